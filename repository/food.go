package repository

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ShantoNoor/FoodTitan-Backend/models"
)

const usersCollectionName = "users"

type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

type FoodRepository struct {
	col      *mongo.Collection
	validate *validator.Validate
}

func NewFoodRepository(col *mongo.Collection, validate *validator.Validate) *FoodRepository {
	return &FoodRepository{col: col, validate: validate}
}

func (r *FoodRepository) Create(ctx context.Context, food models.Food) (*models.Food, error) {
	if err := r.validate.Struct(food); err != nil {
		return nil, validationError(err)
	}

	food.ID = primitive.NewObjectID()
	food.Order_count = 0
	food.Created_at = time.Now()
	food.Updated_at = food.Created_at

	if _, err := r.col.InsertOne(ctx, food); err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *FoodRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Food, error) {
	var food models.Food
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&food)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &food, nil
}

// FindPopulated returns matching foods with created_by resolved into the
// referenced user document. skip and limit of zero mean no paging.
func (r *FoodRepository) FindPopulated(ctx context.Context, filter bson.M, skip, limit int64) ([]bson.M, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
	}
	if skip > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$skip", Value: skip}})
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: limit}})
	}
	pipeline = append(pipeline, populateStages("created_by")...)

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	foods := []bson.M{}
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *FoodRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.col.CountDocuments(ctx, filter)
}

// UpdateFields applies a partial field set to the food with the given
// id. Matching zero records is not an error; the result reports it.
func (r *FoodRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*UpdateResult, error) {
	delete(fields, "_id")
	delete(fields, "created_at")
	fields["updated_at"] = time.Now()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return nil, err
	}
	return &UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (r *FoodRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*DeleteResult, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	return &DeleteResult{DeletedCount: res.DeletedCount}, nil
}

// DecrementStock atomically subtracts quantity sold and bumps
// order_count, returning the updated food. The quantity guard is part
// of the filter, so two concurrent orders can never drive stock below
// zero: the losing writer matches nothing and gets ErrInsufficientStock.
func (r *FoodRepository) DecrementStock(ctx context.Context, id primitive.ObjectID, quantity int64) (*models.Food, error) {
	filter := bson.M{"_id": id, "quantity": bson.M{"$gte": quantity}}
	update := bson.M{
		"$inc": bson.M{"quantity": -quantity, "order_count": 1},
		"$set": bson.M{"updated_at": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var food models.Food
	err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&food)
	if errors.Is(err, mongo.ErrNoDocuments) {
		count, countErr := r.col.CountDocuments(ctx, bson.M{"_id": id})
		if countErr != nil {
			return nil, countErr
		}
		if count == 0 {
			return nil, ErrNotFound
		}
		return nil, ErrInsufficientStock
	} else if err != nil {
		return nil, err
	}
	return &food, nil
}

// TopByOrderCount returns the limit most-ordered foods, descending.
func (r *FoodRepository) TopByOrderCount(ctx context.Context, limit int64) ([]models.Food, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "order_count", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	foods := []models.Food{}
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

// SampleImages returns the image field of up to size random foods,
// sampled without replacement. With fewer than size foods stored it
// returns all of them.
func (r *FoodRepository) SampleImages(ctx context.Context, size int64) ([]string, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$sample", Value: bson.D{{Key: "size", Value: size}}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "image", Value: 1},
		}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []struct {
		Image string `bson:"image"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	images := make([]string, 0, len(docs))
	for _, doc := range docs {
		images = append(images, doc.Image)
	}
	return images, nil
}

// populateStages resolves a user reference field into the referenced
// user document, keeping records whose reference is dangling.
func populateStages(field string) []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: usersCollectionName},
			{Key: "localField", Value: field},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: field},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$" + field},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}
}
