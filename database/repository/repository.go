package repository

import (
	availabilityRepo "painterbook/database/repository/availability"
	bookingRepo "painterbook/database/repository/booking"
	"painterbook/database/repository/memory"
)

// Re-export the AvailabilityRepository interface and constructor.
type AvailabilityRepository = availabilityRepo.AvailabilityRepository

var NewMongoAvailabilityRepo = availabilityRepo.NewMongoAvailabilityRepo

// Re-export the BookingRepository interface and constructor.
type BookingRepository = bookingRepo.BookingRepository

var NewMongoBookingRepo = bookingRepo.NewMongoBookingRepo

// Compile-time checks that the in-memory store satisfies both contracts.
var (
	_ AvailabilityRepository = (*memory.AvailabilityRepo)(nil)
	_ BookingRepository      = (*memory.BookingRepo)(nil)
)
