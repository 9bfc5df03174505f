package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"painterbook/models"
)

func TestCreateIfFreeAllowsOneWinner(t *testing.T) {
	store := NewStore()
	start := time.Date(2030, 3, 11, 10, 0, 0, 0, time.UTC)
	window := models.TimeWindow{Start: start, End: start.Add(time.Hour)}

	const workers = 20
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		won    int
		taken  int
		others []error
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := store.Bookings().CreateIfFree(context.Background(), &models.Booking{
				PainterID:  "painter-1",
				CustomerID: fmt.Sprintf("customer-%d", i),
				TimeWindow: window,
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				won++
			case errors.Is(err, models.ErrSlotTaken):
				taken++
			default:
				others = append(others, err)
			}
		}(i)
	}
	wg.Wait()

	if won != 1 || taken != workers-1 || len(others) != 0 {
		t.Fatalf("won=%d taken=%d others=%v", won, taken, others)
	}
	n, _ := store.Bookings().Count(context.Background(), "painter-1", models.BookingConfirmed)
	if n != 1 {
		t.Fatalf("stored %d bookings, want 1", n)
	}
}

func TestCreateIfFreeRejectsCustomerOverlapAcrossPainters(t *testing.T) {
	store := NewStore()
	start := time.Date(2030, 3, 11, 10, 0, 0, 0, time.UTC)
	window := models.TimeWindow{Start: start, End: start.Add(time.Hour)}

	const workers = 10
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		won     int
		overlap int
		others  []error
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := store.Bookings().CreateIfFree(context.Background(), &models.Booking{
				PainterID:  fmt.Sprintf("painter-%d", i),
				CustomerID: "customer-1",
				TimeWindow: window,
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				won++
			case errors.Is(err, models.ErrCustomerOverlap):
				overlap++
			default:
				others = append(others, err)
			}
		}(i)
	}
	wg.Wait()

	if won != 1 || overlap != workers-1 || len(others) != 0 {
		t.Fatalf("won=%d overlap=%d others=%v", won, overlap, others)
	}

	// Touching windows do not overlap for the same customer.
	next := models.TimeWindow{Start: window.End, End: window.End.Add(time.Hour)}
	if err := store.Bookings().CreateIfFree(context.Background(), &models.Booking{
		PainterID: "painter-x", CustomerID: "customer-1", TimeWindow: next,
	}); err != nil {
		t.Fatalf("adjacent booking rejected: %v", err)
	}
}

func TestCreateIfFreeUsesConflictPredicate(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	at := func(h int) time.Time { return time.Date(2030, 3, 11, h, 0, 0, 0, time.UTC) }

	if err := store.Bookings().CreateIfFree(ctx, &models.Booking{PainterID: "painter-1", TimeWindow: models.TimeWindow{Start: at(14), End: at(15)}}); err != nil {
		t.Fatal(err)
	}
	// Ends exactly where the booking starts: free.
	if err := store.Bookings().CreateIfFree(ctx, &models.Booking{PainterID: "painter-1", TimeWindow: models.TimeWindow{Start: at(13), End: at(14)}}); err != nil {
		t.Fatalf("expected 13-14 to be free, got %v", err)
	}
	// Starts exactly where the booking ends: taken.
	if err := store.Bookings().CreateIfFree(ctx, &models.Booking{PainterID: "painter-1", TimeWindow: models.TimeWindow{Start: at(15), End: at(16)}}); !errors.Is(err, models.ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken for 15-16, got %v", err)
	}
	// Other painters are unaffected.
	if err := store.Bookings().CreateIfFree(ctx, &models.Booking{PainterID: "painter-2", TimeWindow: models.TimeWindow{Start: at(14), End: at(15)}}); err != nil {
		t.Fatalf("unexpected error for painter-2: %v", err)
	}
}

func TestQueriesAndLifecycle(t *testing.T) {
	now := time.Date(2030, 3, 10, 8, 0, 0, 0, time.UTC)
	store := NewStore().WithClock(func() time.Time { return now })
	ctx := context.Background()
	at := func(day, h int) time.Time { return time.Date(2030, 3, day, h, 0, 0, 0, time.UTC) }

	for _, a := range []models.Availability{
		{PainterID: "painter-1", TimeWindow: models.TimeWindow{Start: at(12, 9), End: at(12, 12)}},
		{PainterID: "painter-2", TimeWindow: models.TimeWindow{Start: at(11, 9), End: at(11, 18)}},
		{PainterID: "painter-3", TimeWindow: models.TimeWindow{Start: at(9, 9), End: at(9, 18)}},
	} {
		a := a
		if err := store.Availability().Create(ctx, &a); err != nil {
			t.Fatal(err)
		}
		if a.ID == "" || !a.CreatedAt.Equal(now) {
			t.Fatalf("expected id and clock timestamp, got %+v", a)
		}
	}

	all, _ := store.Availability().Query(ctx, models.AvailabilityFilter{})
	if len(all) != 3 || all[0].PainterID != "painter-3" || all[2].PainterID != "painter-1" {
		t.Fatalf("expected start order, got %+v", all)
	}
	future, _ := store.Availability().Query(ctx, models.AvailabilityFilter{EndsAfter: now})
	if len(future) != 2 {
		t.Fatalf("expected 2 future windows, got %d", len(future))
	}

	got, err := store.Availability().GetByID(ctx, all[0].ID)
	if err != nil || got.PainterID != "painter-3" {
		t.Fatalf("GetByID = %+v, %v", got, err)
	}
	if _, err := store.Availability().GetByID(ctx, "missing"); err == nil {
		t.Fatal("expected error for missing id")
	}

	n, _ := store.Availability().DeleteAll(ctx)
	if n != 3 {
		t.Fatalf("deleted %d, want 3", n)
	}
	store.Reset()
	if left, _ := store.Availability().Query(ctx, models.AvailabilityFilter{}); len(left) != 0 {
		t.Fatal("expected empty store")
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := store.Bookings().Query(cancelled, models.BookingFilter{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
