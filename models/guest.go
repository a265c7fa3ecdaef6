package models

import "gorm.io/gorm"

type Guest struct {
	Base
	Key

	FirstName   string `gorm:"column:first_name;type:varchar(100);not null" json:"first_name"`
	LastName    string `gorm:"column:last_name;type:varchar(100);not null" json:"last_name"`
	Email       string `gorm:"column:email;type:varchar(255);not null" json:"email"`
	Phone       string `gorm:"column:phone;type:varchar(50)" json:"phone"`
	CountryCode string `gorm:"column:country_code;type:varchar(8)" json:"country_code"`
	Address     string `gorm:"column:address;type:text" json:"address"`
}

func (g *Guest) FoldKey() { g.NameKey = Fold(g.Email) }

func (g *Guest) BeforeSave(*gorm.DB) error {
	g.FoldKey()
	return nil
}
