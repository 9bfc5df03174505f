package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"painterbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

// CreateIfFree runs the customer overlap check, the painter conflict check and
// the insert in one transaction. Every transaction bumps the lock documents of
// its painter and its customer, so two concurrent requests sharing either one
// collide on a write conflict; the driver retries the loser, which then sees
// the winner's booking and gets ErrCustomerOverlap or ErrSlotTaken.
// Requires a replica set or sharded cluster.
func (repo *MongoBookingRepo) CreateIfFree(ctx context.Context, booking *models.Booking) error {
	stamp(booking)

	client := repo.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnOpts := options.Transaction().
		SetReadConcern(readconcern.Snapshot()).
		SetWriteConcern(writeconcern.Majority())

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if booking.CustomerID != "" {
			if err := bumpLock(sc, repo.customerLockColl, booking.CustomerID); err != nil {
				return nil, fmt.Errorf("lock customer %s: %w", booking.CustomerID, err)
			}
			n, err := repo.bookingColl.CountDocuments(sc, bookingQuery(models.BookingFilter{
				CustomerID:   booking.CustomerID,
				OverlapsWith: &booking.TimeWindow,
			}))
			if err != nil {
				return nil, fmt.Errorf("customer overlap check failed: %w", err)
			}
			if n > 0 {
				return nil, models.ErrCustomerOverlap
			}
		}

		if err := bumpLock(sc, repo.lockColl, booking.PainterID); err != nil {
			return nil, fmt.Errorf("lock painter %s: %w", booking.PainterID, err)
		}

		n, err := repo.bookingColl.CountDocuments(sc, bookingQuery(models.BookingFilter{
			PainterID:     booking.PainterID,
			ConflictsWith: &booking.TimeWindow,
		}))
		if err != nil {
			return nil, fmt.Errorf("conflict check failed: %w", err)
		}
		if n > 0 {
			return nil, models.ErrSlotTaken
		}

		if _, err := repo.bookingColl.InsertOne(sc, booking); err != nil {
			return nil, fmt.Errorf("insert booking failed: %w", err)
		}
		return nil, nil
	}, txnOpts)
	if err != nil {
		return fmt.Errorf("booking transaction failed: %w", err)
	}
	return nil
}

func bumpLock(sc mongo.SessionContext, coll *mongo.Collection, id string) error {
	update := bson.M{
		"$inc": bson.M{"version": 1},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	}
	_, err := coll.UpdateOne(sc, bson.M{"_id": id}, update, options.Update().SetUpsert(true))
	return err
}
