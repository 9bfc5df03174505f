package availability

import (
	"context"
	"errors"
	"fmt"

	"painterbook/models"

	"go.uber.org/zap"
)

var ErrMissingPainter = errors.New("painter id is required")

// AvailabilityStore is the slice of the availability repository the service uses.
type AvailabilityStore interface {
	Create(ctx context.Context, availability *models.Availability) error
	Query(ctx context.Context, filter models.AvailabilityFilter) ([]models.Availability, error)
}

// AvailabilityService lets painters publish and list their open windows.
type AvailabilityService interface {
	CreateAvailability(ctx context.Context, painterID string, window models.TimeWindow) (*models.Availability, error)
	PainterAvailability(ctx context.Context, painterID string) ([]models.Availability, error)
}

// DefaultAvailabilityService implements AvailabilityService.
type DefaultAvailabilityService struct {
	Repo   AvailabilityStore
	Logger *zap.Logger
}

func NewAvailabilityService(repo AvailabilityStore, logger *zap.Logger) *DefaultAvailabilityService {
	if logger == nil {
		logger = zap.L()
	}
	return &DefaultAvailabilityService{Repo: repo, Logger: logger}
}

// CreateAvailability validates and stores a new window. Windows are never
// merged; overlapping windows for one painter are kept side by side.
func (s *DefaultAvailabilityService) CreateAvailability(ctx context.Context, painterID string, window models.TimeWindow) (*models.Availability, error) {
	if painterID == "" {
		return nil, ErrMissingPainter
	}
	if err := window.Validate(); err != nil {
		return nil, err
	}

	availability := &models.Availability{
		PainterID:  painterID,
		TimeWindow: window,
	}
	if err := s.Repo.Create(ctx, availability); err != nil {
		return nil, fmt.Errorf("failed to create availability: %w", err)
	}

	s.Logger.Info("availability created",
		zap.String("availabilityID", availability.ID),
		zap.String("painterID", painterID),
		zap.Time("start", window.Start),
		zap.Time("end", window.End))
	return availability, nil
}

func (s *DefaultAvailabilityService) PainterAvailability(ctx context.Context, painterID string) ([]models.Availability, error) {
	if painterID == "" {
		return nil, ErrMissingPainter
	}
	return s.Repo.Query(ctx, models.AvailabilityFilter{PainterID: painterID})
}
