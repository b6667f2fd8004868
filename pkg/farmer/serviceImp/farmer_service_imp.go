package serviceImp

import (
	"context"

	"github.com/rs/zerolog"

	"farmapi/entities"
	repo "farmapi/pkg/farmer/repository"
	"farmapi/pkg/farmer/service"
	"farmapi/pkg/metrics"
	"farmapi/pkg/validation"
)

type farmerSvc struct {
	r repo.FarmerRepository
	v *validation.Validator
	m *metrics.Metrics
}

func NewFarmerService(r repo.FarmerRepository, v *validation.Validator, m *metrics.Metrics) service.FarmerService {
	return &farmerSvc{r: r, v: v, m: m}
}

func (s *farmerSvc) Register(ctx context.Context, in service.RegisterInput) (*entities.Farmer, error) {
	if err := s.v.Struct(in); err != nil {
		return nil, err
	}
	f := &entities.Farmer{Name: in.Name, Mobile: in.Mobile, Address: in.Address}
	if err := s.r.Create(ctx, f); err != nil {
		return nil, err
	}
	s.m.FarmerRegistered()
	zerolog.Ctx(ctx).Info().Uint("farmer_id", f.ID).Msg("farmer registered")
	return f, nil
}

func (s *farmerSvc) GetByID(ctx context.Context, id uint) (*entities.Farmer, error) {
	return s.r.FindByID(ctx, id)
}
