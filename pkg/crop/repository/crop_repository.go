package repository

import (
	"context"

	"farmapi/entities"
)

type CropRepository interface {
	Create(ctx context.Context, c *entities.Crop) error
	ListByFarmer(ctx context.Context, farmerID uint) ([]entities.Crop, error)
	FindByID(ctx context.Context, id uint) (*entities.Crop, error)
	Delete(ctx context.Context, id uint) error
}
