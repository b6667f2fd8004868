package serviceImp

import (
	"context"

	"github.com/rs/zerolog"

	"farmapi/entities"
	"farmapi/pkg/apperr"
	repo "farmapi/pkg/crop/repository"
	"farmapi/pkg/crop/service"
	"farmapi/pkg/metrics"
	"farmapi/pkg/validation"
)

type cropSvc struct {
	r repo.CropRepository
	v *validation.Validator
	m *metrics.Metrics
}

func NewCropService(r repo.CropRepository, v *validation.Validator, m *metrics.Metrics) service.CropService {
	return &cropSvc{r: r, v: v, m: m}
}

func (s *cropSvc) Add(ctx context.Context, in service.AddInput) (*entities.Crop, error) {
	if err := s.v.Struct(in); err != nil {
		return nil, err
	}
	if *in.DroneUsageAcreage > *in.TotalAcreage {
		return nil, apperr.Invalid("drone_usage_acreage (%v) exceeds total_acreage (%v)", *in.DroneUsageAcreage, *in.TotalAcreage)
	}
	c := &entities.Crop{
		FarmerID:          *in.FarmerID,
		CropName:          in.CropName,
		ImagePath:         in.ImagePath,
		TotalAcreage:      *in.TotalAcreage,
		DroneUsageAcreage: *in.DroneUsageAcreage,
		ProductsUsed:      in.ProductsUsed,
		QuantityUsed:      *in.QuantityUsed,
	}
	if err := s.r.Create(ctx, c); err != nil {
		return nil, err
	}
	s.m.CropAdded()
	zerolog.Ctx(ctx).Info().Uint("crop_id", c.ID).Uint("farmer_id", c.FarmerID).Msg("crop added")
	return c, nil
}

func (s *cropSvc) ListByFarmer(ctx context.Context, farmerID uint) ([]entities.Crop, error) {
	return s.r.ListByFarmer(ctx, farmerID)
}

func (s *cropSvc) GetByID(ctx context.Context, id uint) (*entities.Crop, error) {
	return s.r.FindByID(ctx, id)
}

func (s *cropSvc) Remove(ctx context.Context, id uint) error {
	if err := s.r.Delete(ctx, id); err != nil {
		return err
	}
	s.m.CropRemoved()
	zerolog.Ctx(ctx).Info().Uint("crop_id", id).Msg("crop removed")
	return nil
}
