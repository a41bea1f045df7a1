package services

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/ShantoNoor/FoodTitan-Backend/models"
)

const (
	topFoodLimit    = 6
	imageSampleSize = 12
)

type HomeFoodReader interface {
	TopByOrderCount(ctx context.Context, limit int64) ([]models.Food, error)
	SampleImages(ctx context.Context, size int64) ([]string, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
}

type UserCounter interface {
	Count(ctx context.Context, filter bson.M) (int64, error)
}

type HomeSummary struct {
	TopFood        []models.Food `json:"top_food"`
	Images         []string      `json:"images"`
	TotalFoodItems int64         `json:"total_food_items"`
	Registered     int64         `json:"registered"`
}

type HomeService struct {
	foods HomeFoodReader
	users UserCounter
}

func NewHomeService(foods HomeFoodReader, users UserCounter) *HomeService {
	return &HomeService{foods: foods, users: users}
}

// Summary aggregates the landing-view statistics. The four reads are
// independent and run concurrently; the first error wins.
func (s *HomeService) Summary(ctx context.Context) (*HomeSummary, error) {
	var summary HomeSummary
	var wg sync.WaitGroup
	errs := make(chan error, 4)

	wg.Add(4)
	go func() {
		defer wg.Done()
		top, err := s.foods.TopByOrderCount(ctx, topFoodLimit)
		if err != nil {
			errs <- err
			return
		}
		summary.TopFood = top
	}()
	go func() {
		defer wg.Done()
		images, err := s.foods.SampleImages(ctx, imageSampleSize)
		if err != nil {
			errs <- err
			return
		}
		summary.Images = images
	}()
	go func() {
		defer wg.Done()
		total, err := s.foods.Count(ctx, bson.M{})
		if err != nil {
			errs <- err
			return
		}
		summary.TotalFoodItems = total
	}()
	go func() {
		defer wg.Done()
		registered, err := s.users.Count(ctx, bson.M{})
		if err != nil {
			errs <- err
			return
		}
		summary.Registered = registered
	}()

	wg.Wait()
	close(errs)
	if err := <-errs; err != nil {
		return nil, err
	}
	return &summary, nil
}
