// File: database/repository/availability/crud.go
package availabilityRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"painterbook/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoAvailabilityRepo) Create(ctx context.Context, availability *models.Availability) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if availability.ID == "" {
		availability.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if availability.CreatedAt.IsZero() {
		availability.CreatedAt = now
	}
	availability.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, availability); err != nil {
		return fmt.Errorf("failed to insert availability: %w", err)
	}
	return nil
}

func (r *mongoAvailabilityRepo) GetByID(ctx context.Context, id string) (*models.Availability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var availability models.Availability
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&availability)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("availability %s not found: %w", id, err)
	}
	if err != nil {
		return nil, fmt.Errorf("find availability %s: %w", id, err)
	}
	return &availability, nil
}

func (r *mongoAvailabilityRepo) DeleteAll(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to clear availabilities: %w", err)
	}
	return res.DeletedCount, nil
}
