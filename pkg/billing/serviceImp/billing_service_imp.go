package serviceImp

import (
	"context"

	"farmapi/pkg/billing/service"
	cropRepo "farmapi/pkg/crop/repository"
	farmerRepo "farmapi/pkg/farmer/repository"
	"farmapi/pkg/metrics"
)

type billingSvc struct {
	crops   cropRepo.CropRepository
	farmers farmerRepo.FarmerRepository
	rate    float64
	m       *metrics.Metrics
}

func NewBillingService(crops cropRepo.CropRepository, farmers farmerRepo.FarmerRepository, ratePerAcre float64, m *metrics.Metrics) service.BillingService {
	return &billingSvc{crops: crops, farmers: farmers, rate: ratePerAcre, m: m}
}

// DroneUsage does not check that the farmer exists; unknown farmers bill zero.
func (s *billingSvc) DroneUsage(ctx context.Context, farmerID uint) (*service.Usage, error) {
	crops, err := s.crops.ListByFarmer(ctx, farmerID)
	if err != nil {
		return nil, err
	}
	s.m.BillingComputed()
	u := service.Compute(crops, s.rate)
	return &u, nil
}

func (s *billingSvc) Statement(ctx context.Context, farmerID uint) (*service.Statement, error) {
	f, err := s.farmers.FindByID(ctx, farmerID)
	if err != nil {
		return nil, err
	}
	crops, err := s.crops.ListByFarmer(ctx, farmerID)
	if err != nil {
		return nil, err
	}
	s.m.BillingComputed()
	return &service.Statement{
		Farmer:      *f,
		Crops:       crops,
		RatePerAcre: s.rate,
		Usage:       service.Compute(crops, s.rate),
	}, nil
}
