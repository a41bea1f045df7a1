package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ShantoNoor/FoodTitan-Backend/models"
	"github.com/ShantoNoor/FoodTitan-Backend/repository"
)

// FoodStocker is the slice of the food repository the placement
// transaction needs.
type FoodStocker interface {
	DecrementStock(ctx context.Context, id primitive.ObjectID, quantity int64) (*models.Food, error)
}

type OrderWriter interface {
	Insert(ctx context.Context, order models.Order) (*models.Order, error)
}

// PlaceOrderInput is the POST /orders body: the order fields as
// submitted by the caller plus the id of the food being purchased.
type PlaceOrderInput struct {
	models.Order
	FoodID string `json:"food_id"`
}

type OrderService struct {
	foods  FoodStocker
	orders OrderWriter
	tx     repository.TxRunner
}

func NewOrderService(foods FoodStocker, orders OrderWriter, tx repository.TxRunner) *OrderService {
	return &OrderService{foods: foods, orders: orders, tx: tx}
}

// Place runs the order unit of work: decrement the food's stock, bump
// its order count and insert the order, all inside one transaction.
// Either both records are persisted or neither is. The order snapshots
// the food fields as submitted by the caller.
func (s *OrderService) Place(ctx context.Context, input PlaceOrderInput) (*models.Order, *models.Food, error) {
	foodID, err := primitive.ObjectIDFromHex(input.FoodID)
	if err != nil {
		return nil, nil, &repository.ValidationError{Message: "food_id is not a valid id"}
	}
	if input.Buying_quantity == nil || *input.Buying_quantity <= 0 {
		return nil, nil, &repository.ValidationError{Message: "buying_quantity must be a positive integer"}
	}

	var (
		saved   *models.Order
		updated *models.Food
	)
	err = s.tx.WithinTransaction(ctx, func(sc context.Context) error {
		food, err := s.foods.DecrementStock(sc, foodID, *input.Buying_quantity)
		if err != nil {
			return err
		}
		order, err := s.orders.Insert(sc, input.Order)
		if err != nil {
			return err
		}
		updated, saved = food, order
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return saved, updated, nil
}
