package controllers

import (
	"github.com/gin-gonic/gin"

	"hotel-admin/models"
	"hotel-admin/services"
)

// ReadOnly serves GET list and GET single.
type ReadOnly interface {
	List(c *gin.Context)
	Get(c *gin.Context)
}

// CRUD serves the full resource surface.
type CRUD interface {
	ReadOnly
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// Resources builds the CRUD controllers keyed by their route segment under /api.
func Resources(reg *services.Registry) map[string]CRUD {
	return map[string]CRUD{
		"rooms":            NewResourceController[models.Room, RoomPayload](reg.Rooms),
		"room-classes":     NewResourceController[models.RoomClass, RoomClassPayload](reg.RoomClasses),
		"bed-types":        NewResourceController[models.BedType, BedTypePayload](reg.BedTypes),
		"features":         NewResourceController[models.Feature, FeaturePayload](reg.Features),
		"floors":           NewResourceController[models.Floor, FloorPayload](reg.Floors),
		"guests":           NewResourceController[models.Guest, GuestPayload](reg.Guests),
		"addons":           NewResourceController[models.Addon, AddonPayload](reg.Addons),
		"payment-statuses": NewResourceController[models.PaymentStatus, PaymentStatusPayload](reg.PaymentStatuses),
		"room-statuses":    NewResourceController[models.RoomStatus, RoomStatusPayload](reg.RoomStatuses),
	}
}

// Logs is read-only; entries only come from the webhook.
func Logs(reg *services.Registry) ReadOnly {
	return NewReadController[models.ActivityLog](reg.Logs)
}
