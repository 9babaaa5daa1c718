package models

// Continent codes accepted for CountryModel.Continent.
var Continents = []string{"AF", "AN", "AS", "EU", "NA", "OC", "SA"}

type CountryModel struct {
	ID          uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string `json:"name" gorm:"column:name;type:varchar(100);not null"`
	CountryCode string `json:"country_code" gorm:"column:country_code;type:varchar(2);not null;uniqueIndex"`
	Continent   string `json:"continent" gorm:"column:continent;type:varchar(2);not null"`
}

func (CountryModel) TableName() string {
	return "countries"
}
