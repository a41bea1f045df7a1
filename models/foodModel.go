package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Food struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        *string            `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Category    *string            `bson:"category" json:"category" validate:"required"`
	Price       *float64           `bson:"price" json:"price" validate:"required,min=0"`
	Quantity    *int64             `bson:"quantity" json:"quantity" validate:"required,min=0"`
	Image       *string            `bson:"image" json:"image" validate:"required,url"`
	Origin      *string            `bson:"origin" json:"origin" validate:"required"`
	Description *string            `bson:"description" json:"description" validate:"required"`
	Created_by  primitive.ObjectID `bson:"created_by" json:"created_by" validate:"required"`
	Order_count int64              `bson:"order_count" json:"order_count"`
	Created_at  time.Time          `bson:"created_at" json:"created_at"`
	Updated_at  time.Time          `bson:"updated_at" json:"updated_at"`
}
