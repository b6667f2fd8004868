package service

import (
	"context"

	"farmapi/entities"
)

// AddInput is the add_crop payload. Numeric fields are pointers so an absent
// field can be told apart from an explicit zero.
type AddInput struct {
	FarmerID          *uint    `json:"farmer_id" validate:"required"`
	CropName          string   `json:"crop_name" validate:"required,max=80"`
	ImagePath         string   `json:"image_path" validate:"required,max=200"`
	TotalAcreage      *float64 `json:"total_acreage" validate:"required,gte=0"`
	DroneUsageAcreage *float64 `json:"drone_usage_acreage" validate:"required,gte=0"`
	ProductsUsed      string   `json:"products_used" validate:"required,max=200"`
	QuantityUsed      *float64 `json:"quantity_used" validate:"required,gte=0"`
}

type CropService interface {
	Add(ctx context.Context, in AddInput) (*entities.Crop, error)
	ListByFarmer(ctx context.Context, farmerID uint) ([]entities.Crop, error)
	GetByID(ctx context.Context, id uint) (*entities.Crop, error)
	Remove(ctx context.Context, id uint) error
}
