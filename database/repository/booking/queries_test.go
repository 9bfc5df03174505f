package bookingRepo

import (
	"reflect"
	"testing"
	"time"

	"painterbook/models"

	"go.mongodb.org/mongo-driver/bson"
)

func TestBookingQuery(t *testing.T) {
	start := time.Date(2030, 3, 11, 14, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	window := models.TimeWindow{Start: start, End: end}

	conflict := bson.M{"startTime": bson.M{"$lt": end}, "endTime": bson.M{"$gte": start}}
	overlap := bson.M{"startTime": bson.M{"$lt": end}, "endTime": bson.M{"$gt": start}}

	tests := []struct {
		name   string
		filter models.BookingFilter
		want   bson.M
	}{
		{"unfiltered", models.BookingFilter{}, bson.M{}},
		{
			"painter and status",
			models.BookingFilter{PainterID: "painter-1", Status: models.BookingConfirmed},
			bson.M{"painterId": "painter-1", "status": models.BookingConfirmed},
		},
		{
			"conflict uses inclusive end",
			models.BookingFilter{PainterID: "painter-1", ConflictsWith: &window},
			bson.M{"painterId": "painter-1", "$and": bson.A{conflict}},
		},
		{
			"overlap is strict",
			models.BookingFilter{CustomerID: "customer-1", OverlapsWith: &window},
			bson.M{"customerId": "customer-1", "$and": bson.A{overlap}},
		},
		{
			"both window clauses kept",
			models.BookingFilter{ConflictsWith: &window, OverlapsWith: &window},
			bson.M{"$and": bson.A{conflict, overlap}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := bookingQuery(tc.filter); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("bookingQuery() = %v, want %v", got, tc.want)
			}
		})
	}
}
