package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"farmapi/database"
	"farmapi/entities"
	"farmapi/pkg/apperr"
	"farmapi/pkg/farmer/repository"
)

type farmerRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FarmerRepository { return &farmerRepo{db} }

func (r *farmerRepo) Create(ctx context.Context, f *entities.Farmer) error {
	if err := r.db.WithContext(ctx).Create(f).Error; err != nil {
		return apperr.Storage("create farmer", err)
	}
	return nil
}

func (r *farmerRepo) FindByID(ctx context.Context, id uint) (*entities.Farmer, error) {
	var f entities.Farmer
	if err := r.db.WithContext(ctx).First(&f, id).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, apperr.NotFound("Farmer not found")
		}
		return nil, apperr.Storage("find farmer", err)
	}
	return &f, nil
}
