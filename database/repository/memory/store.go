// Package memory keeps availability and bookings in process memory. It backs
// the STORE_DRIVER=memory mode and the package tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"painterbook/models"

	"github.com/google/uuid"
)

// Store holds both collections behind one lock so that CreateIfFree is atomic.
type Store struct {
	mu             sync.RWMutex
	availabilities []models.Availability
	bookings       []models.Booking
	now            func() time.Time
}

func NewStore() *Store {
	return &Store{now: time.Now}
}

// WithClock overrides the timestamp source used for CreatedAt.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func (s *Store) Availability() *AvailabilityRepo { return &AvailabilityRepo{s: s} }
func (s *Store) Bookings() *BookingRepo          { return &BookingRepo{s: s} }

// Reset drops all data.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.availabilities = nil
	s.bookings = nil
}

// AvailabilityRepo is the availability view of a Store.
type AvailabilityRepo struct {
	s *Store
}

func (r *AvailabilityRepo) Create(ctx context.Context, availability *models.Availability) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if availability.ID == "" {
		availability.ID = uuid.New().String()
	}
	now := r.s.now()
	if availability.CreatedAt.IsZero() {
		availability.CreatedAt = now
	}
	availability.UpdatedAt = now
	r.s.availabilities = append(r.s.availabilities, *availability)
	return nil
}

func (r *AvailabilityRepo) Query(ctx context.Context, filter models.AvailabilityFilter) ([]models.Availability, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []models.Availability{}
	for _, a := range r.s.availabilities {
		if filter.Matches(a) {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

func (r *AvailabilityRepo) GetByID(ctx context.Context, id string) (*models.Availability, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, a := range r.s.availabilities {
		if a.ID == id {
			found := a
			return &found, nil
		}
	}
	return nil, fmt.Errorf("availability %s not found", id)
}

func (r *AvailabilityRepo) EnsureIndexes(context.Context) error { return nil }

func (r *AvailabilityRepo) DeleteAll(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := int64(len(r.s.availabilities))
	r.s.availabilities = nil
	return n, nil
}

// BookingRepo is the booking view of a Store.
type BookingRepo struct {
	s *Store
}

func (r *BookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.insertLocked(booking)
	return nil
}

func (r *BookingRepo) CreateIfFree(ctx context.Context, booking *models.Booking) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if booking.CustomerID != "" {
		own := models.BookingFilter{CustomerID: booking.CustomerID, OverlapsWith: &booking.TimeWindow}
		for _, b := range r.s.bookings {
			if own.Matches(b) {
				return models.ErrCustomerOverlap
			}
		}
	}
	guard := models.BookingFilter{PainterID: booking.PainterID, ConflictsWith: &booking.TimeWindow}
	for _, b := range r.s.bookings {
		if guard.Matches(b) {
			return models.ErrSlotTaken
		}
	}
	r.insertLocked(booking)
	return nil
}

func (r *BookingRepo) insertLocked(booking *models.Booking) {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	if booking.Status == "" {
		booking.Status = models.BookingConfirmed
	}
	now := r.s.now()
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = now
	}
	booking.UpdatedAt = now
	r.s.bookings = append(r.s.bookings, *booking)
}

func (r *BookingRepo) Query(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []models.Booking{}
	for _, b := range r.s.bookings {
		if filter.Matches(b) {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

func (r *BookingRepo) Count(ctx context.Context, painterID string, status models.BookingStatus) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	filter := models.BookingFilter{PainterID: painterID, Status: status}
	var n int64
	for _, b := range r.s.bookings {
		if filter.Matches(b) {
			n++
		}
	}
	return n, nil
}

func (r *BookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, b := range r.s.bookings {
		if b.ID == id {
			found := b
			return &found, nil
		}
	}
	return nil, fmt.Errorf("booking %s not found", id)
}

func (r *BookingRepo) EnsureIndexes(context.Context) error { return nil }

func (r *BookingRepo) DeleteAll(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := int64(len(r.s.bookings))
	r.s.bookings = nil
	return n, nil
}
