package services

import (
	"context"
	"net/url"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/ShantoNoor/FoodTitan-Backend/repository"
)

// FoodsPerPage is the fixed listing page size.
const FoodsPerPage = 9

type FoodLister interface {
	FindPopulated(ctx context.Context, filter bson.M, skip, limit int64) ([]bson.M, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
}

type FoodService struct {
	foods FoodLister
}

func NewFoodService(foods FoodLister) *FoodService {
	return &FoodService{foods: foods}
}

// List returns one page of foods matching the query, with created_by
// resolved, alongside the total match count ignoring pagination. The
// page items and the count are fetched concurrently.
//
// search and page are reserved keys: search adds a case-insensitive
// substring filter on name when non-empty, page selects the 1-indexed
// page. Every other key becomes a field-equality filter.
func (s *FoodService) List(ctx context.Context, query url.Values) ([]bson.M, int64, error) {
	page, err := strconv.Atoi(query.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	search := query.Get("search")

	equality := url.Values{}
	for key, values := range query {
		if key == "page" || key == "search" {
			continue
		}
		equality[key] = values
	}

	filter := repository.FilterFromQuery(equality)
	if search != "" {
		filter["name"] = repository.NameSearch(search)
	}

	skip := int64(FoodsPerPage * (page - 1))

	type itemsResult struct {
		items []bson.M
		err   error
	}
	type countResult struct {
		total int64
		err   error
	}

	itemsCh := make(chan itemsResult, 1)
	countCh := make(chan countResult, 1)

	go func() {
		items, err := s.foods.FindPopulated(ctx, filter, skip, FoodsPerPage)
		itemsCh <- itemsResult{items: items, err: err}
	}()
	go func() {
		total, err := s.foods.Count(ctx, filter)
		countCh <- countResult{total: total, err: err}
	}()

	items := <-itemsCh
	count := <-countCh

	if items.err != nil {
		return nil, 0, items.err
	}
	if count.err != nil {
		return nil, 0, count.err
	}
	return items.items, count.total, nil
}
