package availabilityRepo

import (
	"reflect"
	"testing"
	"time"

	"painterbook/models"

	"go.mongodb.org/mongo-driver/bson"
)

func TestAvailabilityQuery(t *testing.T) {
	start := time.Date(2030, 3, 11, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	window := models.TimeWindow{Start: start, End: end}

	tests := []struct {
		name   string
		filter models.AvailabilityFilter
		want   bson.M
	}{
		{"unfiltered", models.AvailabilityFilter{}, bson.M{}},
		{"painter", models.AvailabilityFilter{PainterID: "painter-1"}, bson.M{"painterId": "painter-1"}},
		{
			"covering",
			models.AvailabilityFilter{Covering: &window},
			bson.M{"startTime": bson.M{"$lte": start}, "endTime": bson.M{"$gte": end}},
		},
		{
			"ends after",
			models.AvailabilityFilter{EndsAfter: start},
			bson.M{"endTime": bson.M{"$gt": start}},
		},
		{
			"covering and ends after share the end clause",
			models.AvailabilityFilter{PainterID: "painter-2", Covering: &window, EndsAfter: start},
			bson.M{
				"painterId": "painter-2",
				"startTime": bson.M{"$lte": start},
				"endTime":   bson.M{"$gte": end, "$gt": start},
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := availabilityQuery(tc.filter); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("availabilityQuery() = %v, want %v", got, tc.want)
			}
		})
	}
}
