package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotel-admin/models"
	"hotel-admin/utils"
)

// SearchField is one column matched by the list "search" parameter.
// Text columns match case-insensitive substrings unless Exact is set.
// Numeric columns only match when the search term parses as an integer.
type SearchField struct {
	Column  string
	Exact   bool
	Numeric bool
}

// Spec describes a resource as data plus the few entity-specific hooks.
type Spec[T any] struct {
	Name         string
	Table        string
	Search       []SearchField
	SortColumns  map[string]string
	DefaultOrder string
	Preloads     []string
	Unique       *UniqueKey[T]
	Guards       []RelationGuard

	// Validate runs before insert and update, inside the write transaction.
	Validate func(ctx context.Context, tx *gorm.DB, m *T) error
	// AfterSave runs after insert and update with the record identifier.
	AfterSave func(ctx context.Context, tx *gorm.DB, id string, m *T) error
	// BeforeDelete runs after the relation guards passed.
	BeforeDelete func(ctx context.Context, tx *gorm.DB, id string) error
}

type Resource[T any, PT interface {
	*T
	models.Record
}] struct {
	db   *gorm.DB
	spec Spec[T]
}

func NewResource[T any, PT interface {
	*T
	models.Record
}](db *gorm.DB, spec Spec[T]) *Resource[T, PT] {
	if spec.DefaultOrder == "" {
		spec.DefaultOrder = "created_at DESC"
	}
	return &Resource[T, PT]{db: db, spec: spec}
}

func (r *Resource[T, PT]) Name() string { return r.spec.Name }

// List returns one page of records filtered by q.Search.
func (r *Resource[T, PT]) List(ctx context.Context, q utils.PageQuery) (utils.Page[T], error) {
	order, err := r.orderBy(q)
	if err != nil {
		return utils.Page[T]{}, err
	}

	var total int64
	if err := r.filtered(ctx, q.Search).Count(&total).Error; err != nil {
		return utils.Page[T]{}, storeError("list", r.spec.Name, err)
	}

	var items []T
	err = r.preload(r.filtered(ctx, q.Search)).
		Order(order).
		Limit(q.Limit).
		Offset(q.Offset).
		Find(&items).Error
	if err != nil {
		return utils.Page[T]{}, storeError("list", r.spec.Name, err)
	}

	return utils.NewPage(items, q, total), nil
}

func (r *Resource[T, PT]) Get(ctx context.Context, id string) (*T, error) {
	var m T
	err := r.preload(r.db.WithContext(ctx)).
		Where(r.spec.Table+".id = ?", id).
		First(&m).Error
	if err != nil {
		return nil, storeError("get", r.spec.Name, err)
	}
	return &m, nil
}

func (r *Resource[T, PT]) Create(ctx context.Context, m *T) (*T, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.validate(ctx, tx, m); err != nil {
			return err
		}
		if err := r.checkUnique(ctx, tx, m, ""); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(m).Error; err != nil {
			return storeError("create", r.spec.Name, err)
		}
		if r.spec.AfterSave != nil {
			return r.spec.AfterSave(ctx, tx, PT(m).GetID(), m)
		}
		return nil
	})
	if err != nil {
		return nil, storeError("create", r.spec.Name, err)
	}
	return r.Get(ctx, PT(m).GetID())
}

// Update replaces every writable column of the record identified by id.
func (r *Resource[T, PT]) Update(ctx context.Context, id string, m *T) (*T, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.ensureFound(ctx, tx, id); err != nil {
			return err
		}
		if err := r.validate(ctx, tx, m); err != nil {
			return err
		}
		if err := r.checkUnique(ctx, tx, m, id); err != nil {
			return err
		}
		err := tx.Model(new(T)).
			Where("id = ?", id).
			Select("*").
			Omit("ID", "CreatedAt", clause.Associations).
			Updates(m).Error
		if err != nil {
			return storeError("update", r.spec.Name, err)
		}
		if r.spec.AfterSave != nil {
			return r.spec.AfterSave(ctx, tx, id, m)
		}
		return nil
	})
	if err != nil {
		return nil, storeError("update", r.spec.Name, err)
	}
	return r.Get(ctx, id)
}

// Delete removes the record after its relation guards pass. Deletion is physical.
func (r *Resource[T, PT]) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.ensureFound(ctx, tx, id); err != nil {
			return err
		}
		if err := checkGuards(ctx, tx, r.spec.Guards, id); err != nil {
			return err
		}
		if r.spec.BeforeDelete != nil {
			if err := r.spec.BeforeDelete(ctx, tx, id); err != nil {
				return err
			}
		}
		if err := tx.Where("id = ?", id).Delete(new(T)).Error; err != nil {
			return storeError("delete", r.spec.Name, err)
		}
		return nil
	})
	return storeError("delete", r.spec.Name, err)
}

// likeEscaper makes LIKE wildcards in a search term match literally, escaping with '!'.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func (r *Resource[T, PT]) filtered(ctx context.Context, search string) *gorm.DB {
	q := r.db.WithContext(ctx).Model(new(T))
	search = strings.TrimSpace(search)
	if search == "" || len(r.spec.Search) == 0 {
		return q
	}

	lower := strings.ToLower(search)
	clauses := make([]string, 0, len(r.spec.Search))
	args := make([]any, 0, len(r.spec.Search))
	for _, f := range r.spec.Search {
		switch {
		case f.Numeric:
			n, err := strconv.Atoi(search)
			if err != nil {
				continue
			}
			clauses = append(clauses, f.Column+" = ?")
			args = append(args, n)
		case f.Exact:
			clauses = append(clauses, fmt.Sprintf("LOWER(%s) = ?", f.Column))
			args = append(args, lower)
		default:
			clauses = append(clauses, fmt.Sprintf("LOWER(%s) LIKE ? ESCAPE '!'", f.Column))
			args = append(args, "%"+likeEscaper.Replace(lower)+"%")
		}
	}
	if len(clauses) == 0 {
		return q.Where("1 = 0")
	}
	return q.Where("("+strings.Join(clauses, " OR ")+")", args...)
}

func (r *Resource[T, PT]) orderBy(q utils.PageQuery) (string, error) {
	dir := "DESC"
	switch q.SortOrder {
	case "", "desc":
	case "asc":
		dir = "ASC"
	default:
		return "", Validation("Invalid query parameters", "sort_order must be asc or desc")
	}

	if q.SortBy == "" {
		return r.spec.DefaultOrder + ", id", nil
	}
	col, ok := r.spec.SortColumns[q.SortBy]
	if !ok {
		return "", Validation("Invalid query parameters", fmt.Sprintf("sort_by '%s' is not supported", q.SortBy))
	}
	return col + " " + dir + ", id", nil
}

func (r *Resource[T, PT]) preload(q *gorm.DB) *gorm.DB {
	for _, p := range r.spec.Preloads {
		q = q.Preload(p)
	}
	return q
}

func (r *Resource[T, PT]) ensureFound(ctx context.Context, tx *gorm.DB, id string) error {
	var n int64
	if err := tx.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&n).Error; err != nil {
		return storeError("get", r.spec.Name, err)
	}
	if n == 0 {
		return NotFound(r.spec.Name)
	}
	return nil
}

func (r *Resource[T, PT]) validate(ctx context.Context, tx *gorm.DB, m *T) error {
	if r.spec.Validate == nil {
		return nil
	}
	return r.spec.Validate(ctx, tx, m)
}

func (r *Resource[T, PT]) checkUnique(ctx context.Context, tx *gorm.DB, m *T, excludeID string) error {
	u := r.spec.Unique
	if u == nil {
		return nil
	}
	value := u.Value(m)
	column, lookup := u.Column, value
	if s, ok := value.(string); ok && !u.CaseSensitive {
		if k, ok := any(m).(models.Keyed); ok {
			k.FoldKey()
		}
		column, lookup = models.NameKeyColumn, models.Fold(s)
	}
	exists, err := Exists(ctx, tx, r.spec.Table, column, lookup, excludeID)
	if err != nil {
		return Upstream("failed to check "+u.Column, err)
	}
	if exists {
		return Duplicate(u.Column, value)
	}
	return nil
}
