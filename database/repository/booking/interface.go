// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"sessionplanner/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository interface {
	InsertMany(ctx context.Context, bookings []models.Booking) error
	FindByGroupID(ctx context.Context, groupID string) ([]models.Booking, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Booking, error)
	EnsureIndexes() error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a BookingRepository on the "bookings" collection.
func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
