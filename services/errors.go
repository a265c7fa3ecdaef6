package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Kind string

const (
	KindValidation Kind = "VALIDATION_ERROR"
	KindDuplicate  Kind = "DUPLICATE_KEY"
	KindNotFound   Kind = "NOT_FOUND"
	KindInUse      Kind = "CONFLICT_IN_USE"
	KindUpstream   Kind = "UPSTREAM_ERROR"
	KindInternal   Kind = "INTERNAL_ERROR"
)

func (k Kind) Status() int {
	switch k {
	case KindValidation, KindInUse, KindUpstream:
		return http.StatusBadRequest
	case KindDuplicate:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// AppError is the error type returned by every service. Message and Details
// are safe to show to clients; Err carries the underlying cause for logs.
type AppError struct {
	Kind    Kind
	Message string
	Details []string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

func Validation(message string, details ...string) *AppError {
	return &AppError{Kind: KindValidation, Message: message, Details: details}
}

func Duplicate(field string, value any) *AppError {
	return &AppError{Kind: KindDuplicate, Message: fmt.Sprintf("%s '%v' already exists", field, value)}
}

func NotFound(resource string) *AppError {
	return &AppError{Kind: KindNotFound, Message: resource + " not found"}
}

func InUse(message string) *AppError {
	return &AppError{Kind: KindInUse, Message: message}
}

func Upstream(message string, err error) *AppError {
	return &AppError{Kind: KindUpstream, Message: message, Err: err}
}

func Internal(err error) *AppError {
	return &AppError{Kind: KindInternal, Message: "Internal server error", Err: err}
}

// AsAppError returns err as an *AppError, wrapping anything unknown as INTERNAL_ERROR.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

// storeError classifies a data-store error. Constraint violations that slipped
// past the application checks keep their taxonomy; everything else becomes
// UPSTREAM_ERROR without exposing the driver message.
func storeError(op, resource string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFound(resource)
	case isDuplicateKeyError(err):
		return &AppError{Kind: KindDuplicate, Message: resource + " already exists", Err: err}
	case isForeignKeyError(err):
		if op == "delete" {
			return &AppError{Kind: KindInUse, Message: resource + " is still referenced by other records", Err: err}
		}
		return &AppError{Kind: KindValidation, Message: "a referenced record does not exist", Err: err}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return Upstream("request cancelled", err)
	default:
		return Upstream(fmt.Sprintf("failed to %s %s", op, strings.ToLower(resource)), err)
	}
}

func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == 1062
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	lower := strings.ToLower(err.Error())
	return strings.Contains(lower, "unique constraint failed") || strings.Contains(lower, "duplicate entry")
}

func isForeignKeyError(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == 1451 || merr.Number == 1452
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint")
}
