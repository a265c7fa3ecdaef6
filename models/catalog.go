package models

import "gorm.io/gorm"

type BedType struct {
	Base
	Key
	BedTypeName string `gorm:"column:bed_type_name;type:varchar(100);not null" json:"bed_type_name"`
}

type Feature struct {
	Base
	Key
	FeatureName string `gorm:"column:feature_name;type:varchar(100);not null" json:"feature_name"`
}

type Floor struct {
	Base
	FloorNumber int `gorm:"column:floor_number;not null" json:"floor_number"`
}

type Addon struct {
	Base
	Key
	AddonName string  `gorm:"column:addon_name;type:varchar(100);not null" json:"addon_name"`
	Price     float64 `gorm:"column:price;not null" json:"price"`
}

func (b *BedType) FoldKey() { b.NameKey = Fold(b.BedTypeName) }

func (b *BedType) BeforeSave(*gorm.DB) error {
	b.FoldKey()
	return nil
}

func (f *Feature) FoldKey() { f.NameKey = Fold(f.FeatureName) }

func (f *Feature) BeforeSave(*gorm.DB) error {
	f.FoldKey()
	return nil
}

func (a *Addon) FoldKey() { a.NameKey = Fold(a.AddonName) }

func (a *Addon) BeforeSave(*gorm.DB) error {
	a.FoldKey()
	return nil
}
