package repository

import (
	"context"
	"time"

	"github.com/go-playground/validator"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ShantoNoor/FoodTitan-Backend/models"
)

type UserRepository struct {
	col      *mongo.Collection
	validate *validator.Validate
}

func NewUserRepository(col *mongo.Collection, validate *validator.Validate) *UserRepository {
	return &UserRepository{col: col, validate: validate}
}

func (r *UserRepository) Find(ctx context.Context, filter bson.M) ([]models.User, error) {
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Create validates the user and inserts it. Email is the uniqueness
// field: a duplicate yields a ConflictError.
func (r *UserRepository) Create(ctx context.Context, user models.User) (*models.User, error) {
	if err := r.validate.Struct(user); err != nil {
		return nil, validationError(err)
	}

	count, err := r.col.CountDocuments(ctx, bson.M{"email": user.Email})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, &ConflictError{Message: "User already exists"}
	}

	user.ID = primitive.NewObjectID()
	user.Created_at = time.Now()
	user.Updated_at = user.Created_at

	if _, err := r.col.InsertOne(ctx, user); err != nil {
		return nil, translateWriteError(err, "User already exists")
	}
	return &user, nil
}

func (r *UserRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.col.CountDocuments(ctx, filter)
}
