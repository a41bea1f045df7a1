package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/ShantoNoor/FoodTitan-Backend/helper"
	"github.com/ShantoNoor/FoodTitan-Backend/models"
	"github.com/ShantoNoor/FoodTitan-Backend/repository"
)

const requestTimeout = 100 * time.Second

type UserStore interface {
	Find(ctx context.Context, filter bson.M) ([]models.User, error)
	Create(ctx context.Context, user models.User) (*models.User, error)
}

type UserController struct {
	users UserStore
}

func NewUserController(users UserStore) *UserController {
	return &UserController{users: users}
}

func (c *UserController) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	filter := repository.FilterFromQuery(r.URL.Query())

	users, err := c.users.Find(ctx, filter)
	if err != nil {
		helper.RespondError(w, err)
		return
	}

	helper.RespondJSON(w, http.StatusOK, users)
}

func (c *UserController) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		helper.RespondError(w, &repository.ValidationError{Message: "Invalid request body"})
		return
	}

	created, err := c.users.Create(ctx, user)
	if err != nil {
		helper.RespondError(w, err)
		return
	}

	helper.RespondJSON(w, http.StatusCreated, created)
}
