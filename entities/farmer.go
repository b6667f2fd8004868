package entities

type Farmer struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:80;not null" json:"name"`
	Mobile  string `gorm:"size:15;not null" json:"mobile"`
	Address string `gorm:"size:200;not null" json:"address"`
}

func (Farmer) TableName() string { return "farmer" }
