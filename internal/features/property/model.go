package property

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Property struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Address      string             `bson:"address,omitempty" json:"address,omitempty"`
	ContactEmail string             `bson:"contact_email,omitempty" json:"contactEmail,omitempty"`
	ContactPhone string             `bson:"contact_phone,omitempty" json:"contactPhone,omitempty"`
	TotalFloors  int                `bson:"total_floors,omitempty" json:"totalFloors,omitempty"`
	Amenities    []string           `bson:"amenities,omitempty" json:"amenities,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}
