package property

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

type PropertyService interface {
	GetProperty(ctx context.Context) (*Property, error)
	UpdateProperty(ctx context.Context, updates map[string]interface{}) error
}

type PropertyServiceImpl struct {
	PropertyRepo PropertyRepository
}

func NewPropertyService(propertyRepo PropertyRepository) PropertyService {
	return &PropertyServiceImpl{
		PropertyRepo: propertyRepo,
	}
}

func (s *PropertyServiceImpl) GetProperty(ctx context.Context) (*Property, error) {
	return s.PropertyRepo.Find(ctx)
}

var updatableFields = map[string]string{
	"name":         "name",
	"address":      "address",
	"contactEmail": "contact_email",
	"contactPhone": "contact_phone",
	"totalFloors":  "total_floors",
	"amenities":    "amenities",
}

func (s *PropertyServiceImpl) UpdateProperty(ctx context.Context, updates map[string]interface{}) error {
	set := bson.M{}
	for field, value := range updates {
		if name, ok := updatableFields[field]; ok {
			set[name] = value
		}
	}
	if len(set) == 0 {
		return nil
	}
	set["updated_at"] = time.Now()

	return s.PropertyRepo.Upsert(ctx, set)
}
