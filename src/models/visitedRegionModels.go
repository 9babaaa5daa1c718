package models

import "time"

// VisitedRegionModel marks a region as visited by a user.
type VisitedRegionModel struct {
	ID        uint        `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string      `json:"user_id" gorm:"column:user_id;type:varchar(64);not null;uniqueIndex:idx_visited_user_region"`
	RegionID  string      `json:"region" gorm:"column:region_id;type:varchar(10);not null;uniqueIndex:idx_visited_user_region"`
	Region    RegionModel `json:"-" gorm:"foreignKey:RegionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt time.Time   `json:"created_at" gorm:"autoCreateTime"`
}

func (VisitedRegionModel) TableName() string {
	return "visited_regions"
}
