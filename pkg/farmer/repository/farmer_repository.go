package repository

import (
	"context"

	"farmapi/entities"
)

type FarmerRepository interface {
	Create(ctx context.Context, f *entities.Farmer) error
	FindByID(ctx context.Context, id uint) (*entities.Farmer, error)
}
