// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"

	"painterbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type AvailabilityRepository interface {
	Create(ctx context.Context, availability *models.Availability) error
	Query(ctx context.Context, filter models.AvailabilityFilter) ([]models.Availability, error)
	GetByID(ctx context.Context, id string) (*models.Availability, error)
	// DeleteAll empties the collection; used when reseeding demo data.
	DeleteAll(ctx context.Context) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a MongoDB backed AvailabilityRepository.
func NewMongoAvailabilityRepo(db *mongo.Database) AvailabilityRepository {
	return &mongoAvailabilityRepo{
		coll: db.Collection("availabilities"),
	}
}
