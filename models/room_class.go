package models

import "gorm.io/gorm"

// RoomClass groups rooms sharing a price, bed layout and feature set.
type RoomClass struct {
	Base
	Key

	ClassName   string  `gorm:"column:class_name;type:varchar(100);not null" json:"class_name"`
	Description string  `gorm:"type:text" json:"description"`
	BasePrice   float64 `gorm:"column:base_price;not null" json:"base_price"`
	ImageURL    string  `gorm:"column:image_url;type:varchar(512)" json:"image_url"`

	// Edges are owned by the class and removed with it.
	BedTypes []RoomClassBedType `gorm:"foreignKey:RoomClassID;constraint:OnDelete:CASCADE" json:"bed_types"`
	Features []RoomClassFeature `gorm:"foreignKey:RoomClassID;constraint:OnDelete:CASCADE" json:"features"`
}

type RoomClassBedType struct {
	RoomClassID string   `gorm:"primaryKey;type:varchar(36)" json:"room_class_id"`
	BedTypeID   string   `gorm:"primaryKey;type:varchar(36)" json:"bed_type_id"`
	NumBeds     int      `gorm:"column:num_beds;not null;default:1" json:"num_beds"`
	BedType     *BedType `gorm:"foreignKey:BedTypeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"bed_type,omitempty"`
}

type RoomClassFeature struct {
	RoomClassID string   `gorm:"primaryKey;type:varchar(36)" json:"room_class_id"`
	FeatureID   string   `gorm:"primaryKey;type:varchar(36)" json:"feature_id"`
	Feature     *Feature `gorm:"foreignKey:FeatureID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"feature,omitempty"`
}

func (c *RoomClass) FoldKey() { c.NameKey = Fold(c.ClassName) }

func (c *RoomClass) BeforeSave(*gorm.DB) error {
	c.FoldKey()
	return nil
}
