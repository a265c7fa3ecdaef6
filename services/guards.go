package services

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// UniqueKey names the business-key column of a resource.
type UniqueKey[T any] struct {
	Column string
	// Numeric keys are compared exactly. Text keys are matched on the
	// folded name_key column, so T must implement models.Keyed.
	CaseSensitive bool
	Value         func(m *T) any
}

// RelationGuard blocks deletion while rows in Table reference the parent via Column.
type RelationGuard struct {
	Table   string
	Column  string
	Message string
}

// Exists reports whether table already holds a row whose column equals value.
// excludeID skips the record being updated.
func Exists(ctx context.Context, db *gorm.DB, table, column string, value any, excludeID string) (bool, error) {
	q := db.WithContext(ctx).Table(table).Where(fmt.Sprintf("%s = ?", column), value)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var ids []string
	if err := q.Limit(1).Pluck("id", &ids).Error; err != nil {
		return false, err
	}
	return len(ids) > 0, nil
}

// HasDependents probes childTable for at least one row referencing parentID.
func HasDependents(ctx context.Context, db *gorm.DB, childTable, foreignKey, parentID string) (bool, error) {
	var hits []string
	err := db.WithContext(ctx).
		Table(childTable).
		Where(fmt.Sprintf("%s = ?", foreignKey), parentID).
		Limit(1).
		Pluck(foreignKey, &hits).Error
	if err != nil {
		return false, err
	}
	return len(hits) > 0, nil
}

func checkGuards(ctx context.Context, db *gorm.DB, guards []RelationGuard, parentID string) error {
	for _, g := range guards {
		used, err := HasDependents(ctx, db, g.Table, g.Column, parentID)
		if err != nil {
			return Upstream("failed to check related records", err)
		}
		if used {
			return InUse(g.Message)
		}
	}
	return nil
}

// ensureExists rejects references to records that are not there.
func ensureExists(ctx context.Context, db *gorm.DB, table, id, field string) error {
	if strings.TrimSpace(id) == "" {
		return Validation("Invalid request body", field+" is required")
	}
	var n int64
	if err := db.WithContext(ctx).Table(table).Where("id = ?", id).Count(&n).Error; err != nil {
		return Upstream("failed to check "+field, err)
	}
	if n == 0 {
		return Validation("Invalid request body", fmt.Sprintf("%s '%s' does not exist", field, id))
	}
	return nil
}

// ensureAllExist is ensureExists for a set of distinct identifiers.
func ensureAllExist(ctx context.Context, db *gorm.DB, table string, ids []string, field string) error {
	if len(ids) == 0 {
		return nil
	}
	var found []string
	if err := db.WithContext(ctx).Table(table).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return Upstream("failed to check "+field, err)
	}
	if len(found) == len(ids) {
		return nil
	}

	seen := make(map[string]bool, len(found))
	for _, id := range found {
		seen[id] = true
	}
	var missing []string
	for _, id := range ids {
		if !seen[id] {
			missing = append(missing, fmt.Sprintf("%s '%s' does not exist", field, id))
		}
	}
	return Validation("Invalid request body", missing...)
}
