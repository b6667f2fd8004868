package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"farmapi/database"
	"farmapi/entities"
	"farmapi/pkg/apperr"
	"farmapi/pkg/crop/repository"
)

type cropRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropRepository { return &cropRepo{db} }

// Create relies on the crop.farmer_id foreign key to reject unknown farmers.
func (r *cropRepo) Create(ctx context.Context, c *entities.Crop) error {
	if err := r.db.WithContext(ctx).Omit("Farmer").Create(c).Error; err != nil {
		if database.IsForeignKeyViolation(err) {
			return apperr.UnknownFarmer(c.FarmerID)
		}
		return apperr.Storage("create crop", err)
	}
	return nil
}

func (r *cropRepo) ListByFarmer(ctx context.Context, farmerID uint) ([]entities.Crop, error) {
	out := []entities.Crop{}
	if err := r.db.WithContext(ctx).Where("farmer_id = ?", farmerID).Order("id ASC").Find(&out).Error; err != nil {
		return nil, apperr.Storage("list crops", err)
	}
	return out, nil
}

func (r *cropRepo) FindByID(ctx context.Context, id uint) (*entities.Crop, error) {
	var c entities.Crop
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, apperr.NotFound("Crop not found")
		}
		return nil, apperr.Storage("find crop", err)
	}
	return &c, nil
}

func (r *cropRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entities.Crop{}, id)
	if res.Error != nil {
		return apperr.Storage("delete crop", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Crop not found")
	}
	return nil
}
