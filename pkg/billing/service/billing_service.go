package service

import (
	"context"

	"farmapi/entities"
)

// DefaultRatePerAcre is the drone spraying charge per acre.
const DefaultRatePerAcre = 200.0

type Usage struct {
	TotalDroneUsageAcreage float64 `json:"total_drone_usage_acreage"`
	TotalAmount            float64 `json:"total_amount"`
}

// Statement is a farmer's billing breakdown, one line per crop.
type Statement struct {
	Farmer      entities.Farmer
	Crops       []entities.Crop
	RatePerAcre float64
	Usage       Usage
}

type BillingService interface {
	DroneUsage(ctx context.Context, farmerID uint) (*Usage, error)
	Statement(ctx context.Context, farmerID uint) (*Statement, error)
}

// Compute sums drone usage over crops and applies rate.
func Compute(crops []entities.Crop, rate float64) Usage {
	var acres float64
	for _, c := range crops {
		acres += c.DroneUsageAcreage
	}
	return Usage{TotalDroneUsageAcreage: acres, TotalAmount: acres * rate}
}
