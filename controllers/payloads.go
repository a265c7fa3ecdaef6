package controllers

import "hotel-admin/models"

type AddonPayload struct {
	AddonName string   `json:"addon_name" validate:"notblank,max=100"`
	Price     *float64 `json:"price" validate:"required,gt=0"`
}

func (p AddonPayload) Model() *models.Addon {
	return &models.Addon{AddonName: p.AddonName, Price: *p.Price}
}

type BedTypePayload struct {
	BedTypeName string `json:"bed_type_name" validate:"notblank,max=100"`
}

func (p BedTypePayload) Model() *models.BedType {
	return &models.BedType{BedTypeName: p.BedTypeName}
}

type FeaturePayload struct {
	FeatureName string `json:"feature_name" validate:"notblank,max=100"`
}

func (p FeaturePayload) Model() *models.Feature {
	return &models.Feature{FeatureName: p.FeatureName}
}

type FloorPayload struct {
	FloorNumber *int `json:"floor_number" validate:"required,gte=0"`
}

func (p FloorPayload) Model() *models.Floor {
	return &models.Floor{FloorNumber: *p.FloorNumber}
}

type GuestPayload struct {
	FirstName   string `json:"first_name" validate:"notblank,max=100"`
	LastName    string `json:"last_name" validate:"notblank,max=100"`
	Email       string `json:"email" validate:"required,email,max=255"`
	Phone       string `json:"phone" validate:"max=50"`
	CountryCode string `json:"country_code" validate:"max=8"`
	Address     string `json:"address"`
}

func (p GuestPayload) Model() *models.Guest {
	return &models.Guest{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Email:       p.Email,
		Phone:       p.Phone,
		CountryCode: p.CountryCode,
		Address:     p.Address,
	}
}

type PaymentStatusPayload struct {
	PaymentStatusName string `json:"payment_status_name" validate:"notblank,max=100"`
}

func (p PaymentStatusPayload) Model() *models.PaymentStatus {
	return &models.PaymentStatus{PaymentStatusName: p.PaymentStatusName}
}

type RoomStatusPayload struct {
	StatusName  string `json:"status_name" validate:"notblank,max=100"`
	Description string `json:"description"`
	IsAvailable bool   `json:"is_available"`
}

func (p RoomStatusPayload) Model() *models.RoomStatus {
	return &models.RoomStatus{
		StatusName:  p.StatusName,
		Description: p.Description,
		IsAvailable: p.IsAvailable,
	}
}

type RoomPayload struct {
	RoomNumber   string `json:"room_number" validate:"notblank,max=50"`
	FloorID      string `json:"floor_id" validate:"notblank"`
	RoomClassID  string `json:"room_class_id" validate:"notblank"`
	RoomStatusID string `json:"room_status_id" validate:"notblank"`
}

func (p RoomPayload) Model() *models.Room {
	return &models.Room{
		RoomNumber:   p.RoomNumber,
		FloorID:      p.FloorID,
		RoomClassID:  p.RoomClassID,
		RoomStatusID: p.RoomStatusID,
	}
}

type BedTypeEntry struct {
	BedTypeID string `json:"bed_type_id" validate:"notblank"`
	NumBeds   int    `json:"num_beds" validate:"gte=1"`
}

type RoomClassPayload struct {
	ClassName   string         `json:"class_name" validate:"notblank,max=100"`
	Description string         `json:"description"`
	BasePrice   *float64       `json:"base_price" validate:"required,gt=0"`
	ImageURL    string         `json:"image_url" validate:"omitempty,max=512"`
	BedTypes    []BedTypeEntry `json:"bed_types" validate:"omitempty,dive"`
	FeatureIDs  []string       `json:"feature_ids" validate:"omitempty,unique,dive,notblank"`
}

func (p RoomClassPayload) Model() *models.RoomClass {
	m := &models.RoomClass{
		ClassName:   p.ClassName,
		Description: p.Description,
		BasePrice:   *p.BasePrice,
		ImageURL:    p.ImageURL,
	}
	for _, b := range p.BedTypes {
		m.BedTypes = append(m.BedTypes, models.RoomClassBedType{BedTypeID: b.BedTypeID, NumBeds: b.NumBeds})
	}
	for _, id := range p.FeatureIDs {
		m.Features = append(m.Features, models.RoomClassFeature{FeatureID: id})
	}
	return m
}
