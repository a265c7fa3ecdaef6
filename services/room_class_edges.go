package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"hotel-admin/models"
)

func validateRoomClassEdges(ctx context.Context, tx *gorm.DB, m *models.RoomClass) error {
	var details []string

	bedIDs := make([]string, 0, len(m.BedTypes))
	seenBeds := make(map[string]bool, len(m.BedTypes))
	for i, e := range m.BedTypes {
		if e.NumBeds < 1 {
			details = append(details, fmt.Sprintf("bed_types[%d].num_beds must be at least 1", i))
		}
		if seenBeds[e.BedTypeID] {
			details = append(details, fmt.Sprintf("bed_type_id '%s' is listed more than once", e.BedTypeID))
			continue
		}
		seenBeds[e.BedTypeID] = true
		bedIDs = append(bedIDs, e.BedTypeID)
	}

	featureIDs := make([]string, 0, len(m.Features))
	seenFeatures := make(map[string]bool, len(m.Features))
	for _, e := range m.Features {
		if seenFeatures[e.FeatureID] {
			details = append(details, fmt.Sprintf("feature_id '%s' is listed more than once", e.FeatureID))
			continue
		}
		seenFeatures[e.FeatureID] = true
		featureIDs = append(featureIDs, e.FeatureID)
	}

	if len(details) > 0 {
		return Validation("Invalid request body", details...)
	}
	if err := ensureAllExist(ctx, tx, "bed_types", bedIDs, "bed_type_id"); err != nil {
		return err
	}
	return ensureAllExist(ctx, tx, "features", featureIDs, "feature_id")
}

// replaceRoomClassEdges makes the stored bed and feature sets equal to the ones on m.
func replaceRoomClassEdges(ctx context.Context, tx *gorm.DB, id string, m *models.RoomClass) error {
	if err := deleteRoomClassEdges(ctx, tx, id); err != nil {
		return err
	}

	if len(m.BedTypes) > 0 {
		beds := make([]models.RoomClassBedType, 0, len(m.BedTypes))
		for _, e := range m.BedTypes {
			beds = append(beds, models.RoomClassBedType{RoomClassID: id, BedTypeID: e.BedTypeID, NumBeds: e.NumBeds})
		}
		if err := tx.WithContext(ctx).Create(&beds).Error; err != nil {
			return storeError("save", "Room class", err)
		}
	}

	if len(m.Features) > 0 {
		features := make([]models.RoomClassFeature, 0, len(m.Features))
		for _, e := range m.Features {
			features = append(features, models.RoomClassFeature{RoomClassID: id, FeatureID: e.FeatureID})
		}
		if err := tx.WithContext(ctx).Create(&features).Error; err != nil {
			return storeError("save", "Room class", err)
		}
	}
	return nil
}

func deleteRoomClassEdges(ctx context.Context, tx *gorm.DB, id string) error {
	db := tx.WithContext(ctx)
	if err := db.Where("room_class_id = ?", id).Delete(&models.RoomClassBedType{}).Error; err != nil {
		return storeError("delete", "Room class", err)
	}
	if err := db.Where("room_class_id = ?", id).Delete(&models.RoomClassFeature{}).Error; err != nil {
		return storeError("delete", "Room class", err)
	}
	return nil
}
