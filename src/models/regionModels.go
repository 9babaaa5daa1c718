package models

type RegionModel struct {
	ID        string        `json:"id" gorm:"primaryKey;type:varchar(10)"`
	Name      string        `json:"name" gorm:"column:name;type:varchar(100);not null"`
	NameEn    string        `json:"name_en" gorm:"column:name_en;type:varchar(100)"`
	CountryID uint          `json:"country" gorm:"column:country_id;not null;index"`
	Country   CountryModel  `json:"-" gorm:"foreignKey:CountryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Geometry  *MultiPolygon `json:"geometry" gorm:"column:geometry"`
}

func (RegionModel) TableName() string {
	return "regions"
}
