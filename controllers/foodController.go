package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ShantoNoor/FoodTitan-Backend/helper"
	"github.com/ShantoNoor/FoodTitan-Backend/models"
	"github.com/ShantoNoor/FoodTitan-Backend/repository"
)

type FoodStore interface {
	Create(ctx context.Context, food models.Food) (*models.Food, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*repository.UpdateResult, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*repository.DeleteResult, error)
}

type FoodLister interface {
	List(ctx context.Context, query url.Values) ([]bson.M, int64, error)
}

type FoodController struct {
	foods   FoodStore
	listing FoodLister
}

func NewFoodController(foods FoodStore, listing FoodLister) *FoodController {
	return &FoodController{foods: foods, listing: listing}
}

// GetFoods responds with a pair: the requested page of matching foods
// (created_by resolved) and the total match count before pagination.
func (c *FoodController) GetFoods(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	items, total, err := c.listing.List(ctx, r.URL.Query())
	if err != nil {
		helper.RespondError(w, err)
		return
	}

	helper.RespondJSON(w, http.StatusOK, []interface{}{items, total})
}

func (c *FoodController) CreateFood(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var food models.Food
	if err := json.NewDecoder(r.Body).Decode(&food); err != nil {
		helper.RespondError(w, &repository.ValidationError{Message: "Invalid request body"})
		return
	}

	created, err := c.foods.Create(ctx, food)
	if err != nil {
		helper.RespondError(w, err)
		return
	}

	helper.RespondJSON(w, http.StatusCreated, created)
}

func (c *FoodController) UpdateFood(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["_id"])
	if err != nil {
		helper.RespondError(w, &repository.ValidationError{Message: "Invalid food id"})
		return
	}

	fields := bson.M{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		helper.RespondError(w, &repository.ValidationError{Message: "Invalid request body"})
		return
	}

	result, err := c.foods.UpdateFields(ctx, id, fields)
	if err != nil {
		helper.RespondError(w, err)
		return
	}

	helper.RespondJSON(w, http.StatusOK, result)
}

func (c *FoodController) DeleteFood(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["_id"])
	if err != nil {
		helper.RespondError(w, &repository.ValidationError{Message: "Invalid food id"})
		return
	}

	result, err := c.foods.DeleteByID(ctx, id)
	if err != nil {
		helper.RespondError(w, err)
		return
	}

	helper.RespondJSON(w, http.StatusOK, result)
}
