package models

import (
	"time"

	"github.com/m04kA/Glow-BookingService/internal/domain"
)

// CenterResponse модель центра для слоя API
type CenterResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	CreatedAt   string `json:"createdAt"`
}

// ServiceResponse модель услуги для слоя API
type ServiceResponse struct {
	ID              string  `json:"id"`
	CenterID        string  `json:"centerId"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	CreatedAt       string  `json:"createdAt"`
}

// FromDomainCenter конвертирует domain.Center в ответ API
func FromDomainCenter(c *domain.Center) *CenterResponse {
	return &CenterResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainCenterList конвертирует список центров
func FromDomainCenterList(centers []*domain.Center) []*CenterResponse {
	result := make([]*CenterResponse, len(centers))
	for i, c := range centers {
		result[i] = FromDomainCenter(c)
	}
	return result
}

// FromDomainService конвертирует domain.Service в ответ API
func FromDomainService(s *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:              s.ID.String(),
		CenterID:        s.CenterID.String(),
		Name:            s.Name,
		Description:     s.Description,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
		CreatedAt:       s.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainServiceList конвертирует список услуг
func FromDomainServiceList(services []*domain.Service) []*ServiceResponse {
	result := make([]*ServiceResponse, len(services))
	for i, s := range services {
		result[i] = FromDomainService(s)
	}
	return result
}
