package cmd

import (
	"context"
	"fmt"

	"painterbook/config"
	"painterbook/database"
	"painterbook/database/repository"
	"painterbook/database/repository/memory"
	"painterbook/services/scheduling"

	"go.uber.org/zap"
)

type stores struct {
	Availability repository.AvailabilityRepository
	Bookings     repository.BookingRepository
	Close        func(ctx context.Context) error
}

// openStores connects the configured backend and makes sure its indexes exist.
func openStores(ctx context.Context, logger *zap.Logger) (*stores, error) {
	if config.UseMemoryStore() {
		logger.Warn("Using in-memory store, data is lost on restart")
		m := memory.NewStore()
		return &stores{
			Availability: m.Availability(),
			Bookings:     m.Bookings(),
			Close:        func(context.Context) error { return nil },
		}, nil
	}

	if err := database.InitDB(ctx); err != nil {
		return nil, err
	}
	db := database.Database()
	s := &stores{
		Availability: repository.NewMongoAvailabilityRepo(db),
		Bookings:     repository.NewMongoBookingRepo(db),
		Close:        database.CloseDB,
	}
	if err := s.Availability.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("availability indexes: %w", err)
	}
	if err := s.Bookings.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("booking indexes: %w", err)
	}
	logger.Info("Connected to MongoDB", zap.String("database", config.AppConfig.DatabaseName))
	return s, nil
}

// engineWeights maps configuration onto the matching engine weights.
func engineWeights() scheduling.Weights {
	cfg := config.AppConfig
	return scheduling.Weights{
		EfficiencyWeight: cfg.ScoreEfficiencyWeight,
		WorkloadCeiling:  cfg.ScoreWorkloadCeiling,
		WorkloadPenalty:  cfg.ScoreWorkloadPenalty,
		RecencyCeiling:   cfg.ScoreRecencyCeiling,
		RecencyPenalty:   cfg.ScoreRecencyPenalty,
		SameDayFactor:    cfg.SameDayFactor,
	}
}
