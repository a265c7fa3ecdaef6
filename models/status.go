package models

import "gorm.io/gorm"

type PaymentStatus struct {
	Base
	Key
	PaymentStatusName string `gorm:"column:payment_status_name;type:varchar(100);not null" json:"payment_status_name"`
}

// RoomStatus marks whether rooms in this state can be sold. At least one
// available status must always exist.
type RoomStatus struct {
	Base
	Key
	StatusName  string `gorm:"column:status_name;type:varchar(100);not null" json:"status_name"`
	Description string `gorm:"type:text" json:"description"`
	IsAvailable bool   `gorm:"column:is_available;not null;default:false" json:"is_available"`
}

func (p *PaymentStatus) FoldKey() { p.NameKey = Fold(p.PaymentStatusName) }

func (p *PaymentStatus) BeforeSave(*gorm.DB) error {
	p.FoldKey()
	return nil
}

func (s *RoomStatus) FoldKey() { s.NameKey = Fold(s.StatusName) }

func (s *RoomStatus) BeforeSave(*gorm.DB) error {
	s.FoldKey()
	return nil
}
