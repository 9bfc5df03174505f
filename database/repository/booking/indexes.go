package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the bookings collection.
func (repo *MongoBookingRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Conflict checks are always scoped to one painter.
		{
			Keys:    bson.D{{Key: "painterId", Value: 1}, {Key: "startTime", Value: 1}, {Key: "endTime", Value: 1}},
			Options: options.Index().SetName("painter_window_idx"),
		},
		{
			Keys:    bson.D{{Key: "painterId", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("painter_status_idx"),
		},
		{
			Keys:    bson.D{{Key: "customerId", Value: 1}, {Key: "startTime", Value: 1}},
			Options: options.Index().SetName("customer_start_idx"),
		},
	}

	if _, err := repo.bookingColl.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
