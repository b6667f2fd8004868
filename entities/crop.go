package entities

// Crop is a cultivation record owned by a Farmer. The owner id is not part
// of the public JSON shape.
type Crop struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	FarmerID uint    `gorm:"not null;index" json:"-"`
	Farmer   *Farmer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`

	CropName          string  `gorm:"size:80;not null" json:"crop_name"`
	ImagePath         string  `gorm:"size:200;not null" json:"image_path"`
	TotalAcreage      float64 `gorm:"not null" json:"total_acreage"`
	DroneUsageAcreage float64 `gorm:"not null" json:"drone_usage_acreage"`
	ProductsUsed      string  `gorm:"size:200;not null" json:"products_used"`
	QuantityUsed      float64 `gorm:"not null" json:"quantity_used"`
}

func (Crop) TableName() string { return "crop" }
