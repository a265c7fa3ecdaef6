package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestKindStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, KindValidation.Status())
	assert.Equal(t, http.StatusConflict, KindDuplicate.Status())
	assert.Equal(t, http.StatusNotFound, KindNotFound.Status())
	assert.Equal(t, http.StatusBadRequest, KindInUse.Status())
	assert.Equal(t, http.StatusBadRequest, KindUpstream.Status())
	assert.Equal(t, http.StatusInternalServerError, KindInternal.Status())
}

func TestStoreError_Classification(t *testing.T) {
	cases := []struct {
		name string
		op   string
		err  error
		want Kind
	}{
		{"not found", "get", gorm.ErrRecordNotFound, KindNotFound},
		{"gorm duplicate", "create", gorm.ErrDuplicatedKey, KindDuplicate},
		{"mysql duplicate", "create", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}, KindDuplicate},
		{"pg duplicate", "update", &pgconn.PgError{Code: "23505"}, KindDuplicate},
		{"sqlite duplicate", "create", errors.New("UNIQUE constraint failed: addons.addon_name"), KindDuplicate},
		{"fk on delete", "delete", gorm.ErrForeignKeyViolated, KindInUse},
		{"mysql fk on delete", "delete", &mysql.MySQLError{Number: 1451}, KindInUse},
		{"pg fk on create", "create", &pgconn.PgError{Code: "23503"}, KindValidation},
		{"cancelled", "list", context.Canceled, KindUpstream},
		{"other", "list", errors.New("connection reset by peer"), KindUpstream},
		{"wrapped app error", "list", fmt.Errorf("wrap: %w", InUse("busy")), KindInUse},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := AsAppError(storeError(tc.op, "Addon", tc.err))
			assert.Equal(t, tc.want, got.Kind)
		})
	}
}

func TestStoreError_HidesDriverMessage(t *testing.T) {
	err := storeError("list", "Room class", errors.New(`pq: relation "room_classes" does not exist`))

	app := AsAppError(err)
	assert.Equal(t, "failed to list room class", app.Message)
	assert.Empty(t, app.Details)
	assert.Contains(t, app.Error(), "does not exist")
}

func TestStoreError_Nil(t *testing.T) {
	assert.NoError(t, storeError("get", "Addon", nil))
}

func TestAsAppError_Unknown(t *testing.T) {
	app := AsAppError(errors.New("boom"))
	assert.Equal(t, KindInternal, app.Kind)
	assert.Equal(t, "Internal server error", app.Message)
}
