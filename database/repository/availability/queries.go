// File: database/repository/availability/queries.go
package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"painterbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Query returns the matching windows ordered by start time.
func (r *mongoAvailabilityRepo) Query(ctx context.Context, filter models.AvailabilityFilter) ([]models.Availability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}, {Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, availabilityQuery(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availabilities: %w", err)
	}
	defer cursor.Close(ctx)

	availabilities := []models.Availability{}
	if err := cursor.All(ctx, &availabilities); err != nil {
		return nil, fmt.Errorf("error decoding availabilities: %w", err)
	}
	return availabilities, nil
}

func availabilityQuery(filter models.AvailabilityFilter) bson.M {
	query := bson.M{}
	if filter.PainterID != "" {
		query["painterId"] = filter.PainterID
	}

	end := bson.M{}
	if filter.Covering != nil {
		query["startTime"] = bson.M{"$lte": filter.Covering.Start}
		end["$gte"] = filter.Covering.End
	}
	if !filter.EndsAfter.IsZero() {
		end["$gt"] = filter.EndsAfter
	}
	if len(end) > 0 {
		query["endTime"] = end
	}
	return query
}
