package service

import (
	"context"

	"farmapi/entities"
)

// RegisterInput is the register_farmer payload. All three fields are required.
type RegisterInput struct {
	Name    string `json:"name" validate:"required,max=80"`
	Mobile  string `json:"mobile" validate:"required,max=15"`
	Address string `json:"address" validate:"required,max=200"`
}

type FarmerService interface {
	Register(ctx context.Context, in RegisterInput) (*entities.Farmer, error)
	GetByID(ctx context.Context, id uint) (*entities.Farmer, error)
}
