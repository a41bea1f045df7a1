package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order snapshots the purchased food's sale details at the time of
// purchase. created_by is the food's creator, ordered_by the buyer.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name            *string            `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Category        *string            `bson:"category" json:"category" validate:"required"`
	Price           *float64           `bson:"price" json:"price" validate:"required,min=0"`
	Buying_quantity *int64             `bson:"buying_quantity" json:"buying_quantity" validate:"required,gt=0"`
	Total_price     *float64           `bson:"total_price" json:"total_price" validate:"required,min=0"`
	Image           *string            `bson:"image" json:"image" validate:"required,url"`
	Origin          *string            `bson:"origin" json:"origin" validate:"required"`
	Description     *string            `bson:"description" json:"description" validate:"required"`
	Created_by      primitive.ObjectID `bson:"created_by" json:"created_by" validate:"required"`
	Ordered_by      primitive.ObjectID `bson:"ordered_by" json:"ordered_by" validate:"required"`
	Created_at      time.Time          `bson:"created_at" json:"created_at"`
	Updated_at      time.Time          `bson:"updated_at" json:"updated_at"`
}
