// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"painterbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository defines data access for bookings.
type BookingRepository interface {
	// Create persists a booking without any conflict check.
	Create(ctx context.Context, booking *models.Booking) error
	// CreateIfFree checks for conflicting bookings of the same painter and for
	// overlapping bookings of the same customer, and inserts in one atomic unit.
	// It returns models.ErrCustomerOverlap or models.ErrSlotTaken.
	CreateIfFree(ctx context.Context, booking *models.Booking) error
	Query(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)
	Count(ctx context.Context, painterID string, status models.BookingStatus) (int64, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	DeleteAll(ctx context.Context) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	bookingColl      *mongo.Collection
	lockColl         *mongo.Collection
	customerLockColl *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	return &MongoBookingRepo{
		bookingColl:      db.Collection("bookings"),
		lockColl:         db.Collection("painter_locks"),
		customerLockColl: db.Collection("customer_locks"),
	}
}
