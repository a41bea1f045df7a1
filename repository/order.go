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

type OrderRepository struct {
	col      *mongo.Collection
	validate *validator.Validate
}

func NewOrderRepository(col *mongo.Collection, validate *validator.Validate) *OrderRepository {
	return &OrderRepository{col: col, validate: validate}
}

// Insert validates and persists an order. Orders are only ever created
// through the placement transaction, so ctx is expected to carry the
// session of the surrounding unit of work.
func (r *OrderRepository) Insert(ctx context.Context, order models.Order) (*models.Order, error) {
	if err := r.validate.Struct(order); err != nil {
		return nil, validationError(err)
	}

	order.ID = primitive.NewObjectID()
	order.Created_at = time.Now()
	order.Updated_at = order.Created_at

	if _, err := r.col.InsertOne(ctx, order); err != nil {
		return nil, err
	}
	return &order, nil
}

// FindPopulated returns matching orders with both user references
// resolved into embedded user documents.
func (r *OrderRepository) FindPopulated(ctx context.Context, filter bson.M) ([]bson.M, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
	}
	pipeline = append(pipeline, populateStages("created_by")...)
	pipeline = append(pipeline, populateStages("ordered_by")...)

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []bson.M{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// DeleteByID deletes at most one order. Deleting an order does not
// restore the food's stock; sales are final.
func (r *OrderRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*DeleteResult, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	return &DeleteResult{DeletedCount: res.DeletedCount}, nil
}
