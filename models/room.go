package models

import "gorm.io/gorm"

type Room struct {
	Base
	Key

	RoomNumber   string `gorm:"column:room_number;type:varchar(50);not null" json:"room_number"`
	FloorID      string `gorm:"column:floor_id;type:varchar(36);not null;index" json:"floor_id"`
	RoomClassID  string `gorm:"column:room_class_id;type:varchar(36);not null;index" json:"room_class_id"`
	RoomStatusID string `gorm:"column:room_status_id;type:varchar(36);not null;index" json:"room_status_id"`

	Floor      *Floor      `gorm:"foreignKey:FloorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"floor,omitempty"`
	RoomClass  *RoomClass  `gorm:"foreignKey:RoomClassID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"room_class,omitempty"`
	RoomStatus *RoomStatus `gorm:"foreignKey:RoomStatusID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"room_status,omitempty"`
}

func (r *Room) FoldKey() { r.NameKey = Fold(r.RoomNumber) }

func (r *Room) BeforeSave(*gorm.DB) error {
	r.FoldKey()
	return nil
}
