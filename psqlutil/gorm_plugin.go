package psqlutil

import (
	"database/sql"

	"github.com/eagleviewent/go-utilities/errors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

var _ gorm.Plugin = GORMErrorsPlugin{}

type translatedError struct {
	errType errors.ErrorType
	message string
}

// pgErrors maps postgres error codes to the errors seen by callers, see
// https://www.postgresql.org/docs/current/errcodes-appendix.html
var pgErrors = map[string]translatedError{
	"22P02": {errors.ErrorTypeInvalidValue, "invalid input"},
	"23503": {errors.ErrorTypeInvalidArgument, "foreign key violation"},
	"23505": {errors.ErrorTypeAlreadyExists, "object already exists"},
	"23514": {errors.ErrorTypeInvalidArgument, "check constraint violation"},
}

// GORMErrorsPlugin translates driver and value type errors raised by
// GORM operations into *errors.Error. The driver error text is kept
// as the internal message.
type GORMErrorsPlugin struct{}

// Name returns the name of the plugin.
func (GORMErrorsPlugin) Name() string {
	return "psqlerrors"
}

// Initialize registers the translation after every GORM operation.
func (p GORMErrorsPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()

	return errors.Join(
		cb.Create().After("gorm:create").Register("psqlerrors:create", p.handleError),
		cb.Query().After("gorm:query").Register("psqlerrors:query", p.handleError),
		cb.Update().After("gorm:update").Register("psqlerrors:update", p.handleError),
		cb.Delete().After("gorm:delete").Register("psqlerrors:delete", p.handleError),
		cb.Row().After("gorm:row").Register("psqlerrors:row", p.handleError),
		cb.Raw().After("gorm:raw").Register("psqlerrors:raw", p.handleError),
	)
}

func (GORMErrorsPlugin) handleError(tx *gorm.DB) {
	if tx.Error == nil {
		return
	}

	tx.Error = translate(tx.Error)
}

func translate(err error) *errors.Error {
	out := &errors.Error{
		Type:            errors.ErrorTypeInternalError,
		Message:         err.Error(),
		InternalMessage: err.Error(),
	}

	var typed *errors.Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, sql.ErrNoRows):
		out.Type, out.Message = errors.ErrorTypeNotFound, "record not found"

	case errors.As(err, &typed):
		// A value type rejected a column while scanning.
		out.Type, out.Message = typed.Type, typed.Message

	default:
		if t, ok := pgErrors[pgErrorCode(err)]; ok {
			out.Type, out.Message = t.errType, t.message
		}
	}

	return out
}

// pgErrorCode returns the postgres error code carried by err, from
// either the pgx driver or lib/pq, or "".
func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError

	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	var pqErr *pq.Error

	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}

	return ""
}
