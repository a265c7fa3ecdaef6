package services

import (
	"context"

	"gorm.io/gorm"

	"hotel-admin/models"
)

func NewAddonService(db *gorm.DB) *Resource[models.Addon, *models.Addon] {
	return NewResource[models.Addon](db, Spec[models.Addon]{
		Name:        "Addon",
		Table:       "addons",
		Search:      []SearchField{{Column: "addon_name"}},
		SortColumns: map[string]string{"addon_name": "addon_name", "price": "price", "created_at": "created_at"},
		Unique: &UniqueKey[models.Addon]{
			Column: "addon_name",
			Value:  func(m *models.Addon) any { return m.AddonName },
		},
	})
}

func NewBedTypeService(db *gorm.DB) *Resource[models.BedType, *models.BedType] {
	return NewResource[models.BedType](db, Spec[models.BedType]{
		Name:        "Bed type",
		Table:       "bed_types",
		Search:      []SearchField{{Column: "bed_type_name"}},
		SortColumns: map[string]string{"bed_type_name": "bed_type_name", "created_at": "created_at"},
		Unique: &UniqueKey[models.BedType]{
			Column: "bed_type_name",
			Value:  func(m *models.BedType) any { return m.BedTypeName },
		},
		Guards: []RelationGuard{
			{Table: "room_class_bed_types", Column: "bed_type_id", Message: "Bed type is used by one or more room classes"},
		},
	})
}

func NewFeatureService(db *gorm.DB) *Resource[models.Feature, *models.Feature] {
	return NewResource[models.Feature](db, Spec[models.Feature]{
		Name:        "Feature",
		Table:       "features",
		Search:      []SearchField{{Column: "feature_name"}},
		SortColumns: map[string]string{"feature_name": "feature_name", "created_at": "created_at"},
		Unique: &UniqueKey[models.Feature]{
			Column: "feature_name",
			Value:  func(m *models.Feature) any { return m.FeatureName },
		},
		Guards: []RelationGuard{
			{Table: "room_class_features", Column: "feature_id", Message: "Feature is used by one or more room classes"},
		},
	})
}

func NewFloorService(db *gorm.DB) *Resource[models.Floor, *models.Floor] {
	return NewResource[models.Floor](db, Spec[models.Floor]{
		Name:         "Floor",
		Table:        "floors",
		Search:       []SearchField{{Column: "floor_number", Exact: true, Numeric: true}},
		SortColumns:  map[string]string{"floor_number": "floor_number", "created_at": "created_at"},
		DefaultOrder: "floor_number ASC",
		Unique: &UniqueKey[models.Floor]{
			Column:        "floor_number",
			CaseSensitive: true,
			Value:         func(m *models.Floor) any { return m.FloorNumber },
		},
		Guards: []RelationGuard{
			{Table: "rooms", Column: "floor_id", Message: "Floor has one or more rooms"},
		},
	})
}

func NewGuestService(db *gorm.DB) *Resource[models.Guest, *models.Guest] {
	return NewResource[models.Guest](db, Spec[models.Guest]{
		Name:  "Guest",
		Table: "guests",
		Search: []SearchField{
			{Column: "first_name"},
			{Column: "last_name"},
			{Column: "email"},
			{Column: "phone"},
		},
		SortColumns: map[string]string{
			"first_name": "first_name",
			"last_name":  "last_name",
			"email":      "email",
			"created_at": "created_at",
		},
		Unique: &UniqueKey[models.Guest]{
			Column: "email",
			Value:  func(m *models.Guest) any { return m.Email },
		},
	})
}

func NewPaymentStatusService(db *gorm.DB) *Resource[models.PaymentStatus, *models.PaymentStatus] {
	return NewResource[models.PaymentStatus](db, Spec[models.PaymentStatus]{
		Name:        "Payment status",
		Table:       "payment_statuses",
		Search:      []SearchField{{Column: "payment_status_name"}},
		SortColumns: map[string]string{"payment_status_name": "payment_status_name", "created_at": "created_at"},
		Unique: &UniqueKey[models.PaymentStatus]{
			Column: "payment_status_name",
			Value:  func(m *models.PaymentStatus) any { return m.PaymentStatusName },
		},
	})
}

func NewRoomStatusService(db *gorm.DB) *Resource[models.RoomStatus, *models.RoomStatus] {
	return NewResource[models.RoomStatus](db, Spec[models.RoomStatus]{
		Name:        "Room status",
		Table:       "room_statuses",
		Search:      []SearchField{{Column: "status_name"}},
		SortColumns: map[string]string{"status_name": "status_name", "created_at": "created_at"},
		Unique: &UniqueKey[models.RoomStatus]{
			Column: "status_name",
			Value:  func(m *models.RoomStatus) any { return m.StatusName },
		},
		Guards: []RelationGuard{
			{Table: "rooms", Column: "room_status_id", Message: "Room status is assigned to one or more rooms"},
		},
		BeforeDelete: keepOneAvailableStatus,
	})
}

func NewRoomService(db *gorm.DB) *Resource[models.Room, *models.Room] {
	return NewResource[models.Room](db, Spec[models.Room]{
		Name:        "Room",
		Table:       "rooms",
		Search:      []SearchField{{Column: "room_number"}},
		SortColumns: map[string]string{"room_number": "room_number", "created_at": "created_at"},
		Preloads:    []string{"Floor", "RoomClass", "RoomStatus"},
		Unique: &UniqueKey[models.Room]{
			Column: "room_number",
			Value:  func(m *models.Room) any { return m.RoomNumber },
		},
		Validate: func(ctx context.Context, tx *gorm.DB, m *models.Room) error {
			if err := ensureExists(ctx, tx, "floors", m.FloorID, "floor_id"); err != nil {
				return err
			}
			if err := ensureExists(ctx, tx, "room_classes", m.RoomClassID, "room_class_id"); err != nil {
				return err
			}
			return ensureExists(ctx, tx, "room_statuses", m.RoomStatusID, "room_status_id")
		},
	})
}

func NewRoomClassService(db *gorm.DB) *Resource[models.RoomClass, *models.RoomClass] {
	return NewResource[models.RoomClass](db, Spec[models.RoomClass]{
		Name:        "Room class",
		Table:       "room_classes",
		Search:      []SearchField{{Column: "class_name"}},
		SortColumns: map[string]string{"class_name": "class_name", "base_price": "base_price", "created_at": "created_at"},
		Preloads:    []string{"BedTypes.BedType", "Features.Feature"},
		Unique: &UniqueKey[models.RoomClass]{
			Column: "class_name",
			Value:  func(m *models.RoomClass) any { return m.ClassName },
		},
		Guards: []RelationGuard{
			{Table: "rooms", Column: "room_class_id", Message: "Room class is assigned to one or more rooms"},
		},
		Validate:     validateRoomClassEdges,
		AfterSave:    replaceRoomClassEdges,
		BeforeDelete: deleteRoomClassEdges,
	})
}

func NewActivityLogService(db *gorm.DB) *Resource[models.ActivityLog, *models.ActivityLog] {
	return NewResource[models.ActivityLog](db, Spec[models.ActivityLog]{
		Name:  "Log",
		Table: "activity_logs",
		Search: []SearchField{
			{Column: "action_type"},
			{Column: "resource_type"},
			{Column: "actor_id"},
		},
		SortColumns: map[string]string{"action_type": "action_type", "created_at": "created_at"},
	})
}

// keepOneAvailableStatus refuses to delete the last room status that marks rooms as available.
func keepOneAvailableStatus(ctx context.Context, tx *gorm.DB, id string) error {
	var status models.RoomStatus
	if err := tx.WithContext(ctx).Where("id = ?", id).First(&status).Error; err != nil {
		return storeError("get", "Room status", err)
	}
	if !status.IsAvailable {
		return nil
	}

	var available int64
	err := tx.WithContext(ctx).
		Model(&models.RoomStatus{}).
		Where("is_available = ?", true).
		Count(&available).Error
	if err != nil {
		return storeError("get", "Room status", err)
	}
	if available <= 1 {
		return InUse("At least one available room status must remain")
	}
	return nil
}

// Registry holds one service per managed resource over a shared store handle.
type Registry struct {
	Rooms           *Resource[models.Room, *models.Room]
	RoomClasses     *Resource[models.RoomClass, *models.RoomClass]
	BedTypes        *Resource[models.BedType, *models.BedType]
	Features        *Resource[models.Feature, *models.Feature]
	Floors          *Resource[models.Floor, *models.Floor]
	Guests          *Resource[models.Guest, *models.Guest]
	Addons          *Resource[models.Addon, *models.Addon]
	PaymentStatuses *Resource[models.PaymentStatus, *models.PaymentStatus]
	RoomStatuses    *Resource[models.RoomStatus, *models.RoomStatus]
	Logs            *Resource[models.ActivityLog, *models.ActivityLog]
}

func NewRegistry(db *gorm.DB) *Registry {
	return &Registry{
		Rooms:           NewRoomService(db),
		RoomClasses:     NewRoomClassService(db),
		BedTypes:        NewBedTypeService(db),
		Features:        NewFeatureService(db),
		Floors:          NewFloorService(db),
		Guests:          NewGuestService(db),
		Addons:          NewAddonService(db),
		PaymentStatuses: NewPaymentStatusService(db),
		RoomStatuses:    NewRoomStatusService(db),
		Logs:            NewActivityLogService(db),
	}
}
