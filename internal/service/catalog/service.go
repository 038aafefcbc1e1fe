package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	centerRepo "github.com/m04kA/Glow-BookingService/internal/infra/storage/center"
	"github.com/m04kA/Glow-BookingService/internal/service/catalog/models"
)

// Service read-only сервис каталога центров и услуг
type Service struct {
	centerRepo  CenterRepository
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	centerRepo CenterRepository,
	serviceRepo ServiceRepository,
	logger Logger,
) *Service {
	return &Service{
		centerRepo:  centerRepo,
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// ListCenters возвращает все центры, отсортированные по имени
func (s *Service) ListCenters(ctx context.Context) ([]*models.CenterResponse, error) {
	s.logger.Info("ListCenters: fetching all centers")

	centers, err := s.centerRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListCenters: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCenters - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListCenters: successfully fetched %d centers", len(centers))
	return models.FromDomainCenterList(centers), nil
}

// GetCenterBySlug возвращает центр по уникальному slug
func (s *Service) GetCenterBySlug(ctx context.Context, slug string) (*models.CenterResponse, error) {
	s.logger.Info("GetCenterBySlug: fetching center slug=%s", slug)

	if slug == "" {
		return nil, fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}

	center, err := s.centerRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, centerRepo.ErrCenterNotFound) {
			s.logger.Warn("GetCenterBySlug: center slug=%s not found", slug)
			return nil, ErrCenterNotFound
		}
		s.logger.Error("GetCenterBySlug: repository error for slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: GetCenterBySlug - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCenter(center), nil
}

// GetCenterServices возвращает услуги центра
func (s *Service) GetCenterServices(ctx context.Context, centerID uuid.UUID) ([]*models.ServiceResponse, error) {
	s.logger.Info("GetCenterServices: fetching services for center=%s", centerID)

	if centerID == uuid.Nil {
		return nil, fmt.Errorf("%w: centerID is required", ErrInvalidInput)
	}

	services, err := s.serviceRepo.GetByCenter(ctx, centerID)
	if err != nil {
		s.logger.Error("GetCenterServices: repository error for center=%s: %v", centerID, err)
		return nil, fmt.Errorf("%w: GetCenterServices - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCenterServices: successfully fetched %d services for center=%s", len(services), centerID)
	return models.FromDomainServiceList(services), nil
}
