package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name       *string            `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Email      *string            `bson:"email" json:"email" validate:"required,email"`
	Image      *string            `bson:"image,omitempty" json:"image,omitempty"`
	Created_at time.Time          `bson:"created_at" json:"created_at"`
	Updated_at time.Time          `bson:"updated_at" json:"updated_at"`
}
