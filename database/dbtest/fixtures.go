package dbtest

import (
	"testing"

	"github.com/qawatake/fixify"
	"gorm.io/gorm"

	"farmapi/entities"
)

// Farmer is a farmer fixture; crops attach with With.
func Farmer(name string) *fixify.Model[entities.Farmer] {
	return fixify.NewModel(&entities.Farmer{Name: name, Mobile: "0812345678", Address: "Khon Kaen"})
}

// Crop is a crop fixture whose farmer_id is filled from its parent Farmer.
func Crop(name string, total, drone float64) *fixify.Model[entities.Crop] {
	return fixify.NewModel(
		&entities.Crop{
			CropName:          name,
			ImagePath:         "images/" + name + ".jpg",
			TotalAcreage:      total,
			DroneUsageAcreage: drone,
			ProductsUsed:      "urea",
			QuantityUsed:      1.5,
		},
		fixify.ConnectorFunc(func(_ testing.TB, c *entities.Crop, f *entities.Farmer) {
			c.FarmerID = f.ID
		}),
	)
}

// Seed inserts the fixture trees parents-first.
func Seed(tb testing.TB, db *gorm.DB, models ...fixify.IModel) *fixify.Fixture {
	tb.Helper()
	f := fixify.New(tb, models...)
	f.Iterate(func(v any) error {
		return db.Create(v).Error
	})
	return f
}
