package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ShantoNoor/FoodTitan-Backend/helper"
	"github.com/ShantoNoor/FoodTitan-Backend/models"
	"github.com/ShantoNoor/FoodTitan-Backend/repository"
	"github.com/ShantoNoor/FoodTitan-Backend/services"
)

type OrderStore interface {
	FindPopulated(ctx context.Context, filter bson.M) ([]bson.M, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*repository.DeleteResult, error)
}

type OrderPlacer interface {
	Place(ctx context.Context, input services.PlaceOrderInput) (*models.Order, *models.Food, error)
}

type OrderController struct {
	orders    OrderStore
	placement OrderPlacer
}

func NewOrderController(orders OrderStore, placement OrderPlacer) *OrderController {
	return &OrderController{orders: orders, placement: placement}
}

func (c *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	filter := repository.FilterFromQuery(r.URL.Query())

	orders, err := c.orders.FindPopulated(ctx, filter)
	if err != nil {
		helper.RespondError(w, err)
		return
	}

	helper.RespondJSON(w, http.StatusOK, orders)
}

// PlaceOrder responds with the saved order and the updated food as a
// pair, mirroring what the placement transaction persisted.
func (c *OrderController) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var input services.PlaceOrderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		helper.RespondError(w, &repository.ValidationError{Message: "Invalid request body"})
		return
	}

	order, food, err := c.placement.Place(ctx, input)
	if err != nil {
		helper.RespondError(w, err)
		return
	}

	helper.RespondJSON(w, http.StatusCreated, []interface{}{order, food})
}

// DeleteOrder removes an order without restoring the food's stock.
func (c *OrderController) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["_id"])
	if err != nil {
		helper.RespondError(w, &repository.ValidationError{Message: "Invalid order id"})
		return
	}

	result, err := c.orders.DeleteByID(ctx, id)
	if err != nil {
		helper.RespondError(w, err)
		return
	}

	helper.RespondJSON(w, http.StatusOK, result)
}
