package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"painterbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Query returns the matching bookings ordered by start time.
func (repo *MongoBookingRepo) Query(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	cursor, err := repo.bookingColl.Find(ctx, bookingQuery(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("error finding bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

// Count returns the number of bookings a painter holds in the given status.
func (repo *MongoBookingRepo) Count(ctx context.Context, painterID string, status models.BookingStatus) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := repo.bookingColl.CountDocuments(ctx, bookingQuery(models.BookingFilter{
		PainterID: painterID,
		Status:    status,
	}))
	if err != nil {
		return 0, fmt.Errorf("error counting bookings for painter %s: %w", painterID, err)
	}
	return n, nil
}

// bookingQuery translates a filter into a MongoDB query. Window predicates go
// under $and so that conflict and overlap clauses never overwrite each other.
func bookingQuery(filter models.BookingFilter) bson.M {
	query := bson.M{}
	if filter.PainterID != "" {
		query["painterId"] = filter.PainterID
	}
	if filter.CustomerID != "" {
		query["customerId"] = filter.CustomerID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	var clauses bson.A
	if w := filter.ConflictsWith; w != nil {
		clauses = append(clauses, bson.M{
			"startTime": bson.M{"$lt": w.End},
			"endTime":   bson.M{"$gte": w.Start},
		})
	}
	if w := filter.OverlapsWith; w != nil {
		clauses = append(clauses, bson.M{
			"startTime": bson.M{"$lt": w.End},
			"endTime":   bson.M{"$gt": w.Start},
		})
	}
	if len(clauses) > 0 {
		query["$and"] = clauses
	}
	return query
}
