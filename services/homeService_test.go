package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ShantoNoor/FoodTitan-Backend/models"
)

// stubHomeFoods answers the three food reads. SampleImages honors the
// sampling contract: never more images than exist.
type stubHomeFoods struct {
	top    []models.Food
	images []string
	count  int64

	topErr, imagesErr, countErr error

	requestedTop    int64
	requestedSample int64
}

func (s *stubHomeFoods) TopByOrderCount(ctx context.Context, limit int64) ([]models.Food, error) {
	s.requestedTop = limit
	return s.top, s.topErr
}

func (s *stubHomeFoods) SampleImages(ctx context.Context, size int64) ([]string, error) {
	s.requestedSample = size
	if s.imagesErr != nil {
		return nil, s.imagesErr
	}
	if int64(len(s.images)) <= size {
		return s.images, nil
	}
	return s.images[:size], nil
}

func (s *stubHomeFoods) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.count, s.countErr
}

type stubUserCounter struct {
	count int64
	err   error
}

func (s *stubUserCounter) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.count, s.err
}

func TestHomeServiceSummary(t *testing.T) {
	top := []models.Food{
		{ID: primitive.NewObjectID(), Order_count: 9},
		{ID: primitive.NewObjectID(), Order_count: 4},
	}
	foods := &stubHomeFoods{
		top:    top,
		images: []string{"a.jpg", "b.jpg", "c.jpg"},
		count:  3,
	}
	users := &stubUserCounter{count: 17}

	summary, err := NewHomeService(foods, users).Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, top, summary.TopFood)
	assert.EqualValues(t, 3, summary.TotalFoodItems)
	assert.EqualValues(t, 17, summary.Registered)

	// with only 3 foods stored, the 12-image sample returns all 3
	assert.Len(t, summary.Images, 3)
	assert.EqualValues(t, 12, foods.requestedSample)
	assert.EqualValues(t, 6, foods.requestedTop)
}

func TestHomeServiceSummaryErrors(t *testing.T) {
	boom := errors.New("storage down")

	tests := []struct {
		name  string
		foods *stubHomeFoods
		users *stubUserCounter
	}{
		{"top food fails", &stubHomeFoods{topErr: boom}, &stubUserCounter{}},
		{"image sample fails", &stubHomeFoods{imagesErr: boom}, &stubUserCounter{}},
		{"food count fails", &stubHomeFoods{countErr: boom}, &stubUserCounter{}},
		{"user count fails", &stubHomeFoods{}, &stubUserCounter{err: boom}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHomeService(tt.foods, tt.users).Summary(context.Background())
			assert.ErrorIs(t, err, boom)
		})
	}
}
