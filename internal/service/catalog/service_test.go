package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Glow-BookingService/internal/domain"
	centerRepo "github.com/m04kA/Glow-BookingService/internal/infra/storage/center"
)

type fakeCenterRepo struct {
	centers []*domain.Center
	err     error
}

func (f *fakeCenterRepo) List(context.Context) ([]*domain.Center, error) {
	return f.centers, f.err
}

func (f *fakeCenterRepo) GetBySlug(_ context.Context, slug string) (*domain.Center, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.centers {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, centerRepo.ErrCenterNotFound
}

type fakeServiceRepo struct {
	services []*domain.Service
	err      error
}

func (f *fakeServiceRepo) GetByCenter(context.Context, uuid.UUID) ([]*domain.Service, error) {
	return f.services, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestListCenters(t *testing.T) {
	centers := []*domain.Center{
		{ID: uuid.New(), Name: "Aura Spa", Slug: "aura-spa"},
		{ID: uuid.New(), Name: "Bliss Beauty", Slug: "bliss-beauty"},
	}
	svc := NewService(&fakeCenterRepo{centers: centers}, &fakeServiceRepo{}, nopLogger{})

	result, err := svc.ListCenters(context.Background())
	require.NoError(t, err)

	require.Len(t, result, 2)
	assert.Equal(t, "aura-spa", result[0].Slug)
	assert.Equal(t, "bliss-beauty", result[1].Slug)
}

func TestListCenters_RepositoryError(t *testing.T) {
	svc := NewService(&fakeCenterRepo{err: errors.New("boom")}, &fakeServiceRepo{}, nopLogger{})

	_, err := svc.ListCenters(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetCenterBySlug(t *testing.T) {
	center := &domain.Center{ID: uuid.New(), Name: "Aura Spa", Slug: "aura-spa"}
	svc := NewService(&fakeCenterRepo{centers: []*domain.Center{center}}, &fakeServiceRepo{}, nopLogger{})

	result, err := svc.GetCenterBySlug(context.Background(), "aura-spa")
	require.NoError(t, err)
	assert.Equal(t, center.ID.String(), result.ID)

	_, err = svc.GetCenterBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrCenterNotFound)

	_, err = svc.GetCenterBySlug(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetCenterServices(t *testing.T) {
	services := []*domain.Service{
		{ID: uuid.New(), Name: "Classic Manicure", DurationMinutes: 45, Price: 35},
	}
	svc := NewService(&fakeCenterRepo{}, &fakeServiceRepo{services: services}, nopLogger{})

	result, err := svc.GetCenterServices(context.Background(), uuid.New())
	require.NoError(t, err)

	require.Len(t, result, 1)
	assert.Equal(t, 45, result[0].DurationMinutes)

	_, err = svc.GetCenterServices(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
