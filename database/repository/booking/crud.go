// File: database/repository/booking/crud.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"sessionplanner/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InsertMany writes all rows of a booking group in one ordered insert.
func (r *mongoBookingRepo) InsertMany(ctx context.Context, bookings []models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	docs := make([]interface{}, len(bookings))
	for i, b := range bookings {
		docs[i] = b
	}
	if _, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
		return fmt.Errorf("failed to insert bookings: %w", err)
	}
	return nil
}

func (r *mongoBookingRepo) FindByGroupID(ctx context.Context, groupID string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"bookingGroupId": groupID}, options.Find())
}

// FindByUserID matches the user_id attendees put in their free-form details, newest first.
func (r *mongoBookingRepo) FindByUserID(ctx context.Context, userID string) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "bookedAt", Value: -1}})
	return r.find(ctx, bson.M{"userDetails.user_id": userID}, opts)
}

func (r *mongoBookingRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}
