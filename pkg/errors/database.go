package errors

import (
	"database/sql"
	stderrors "errors"

	"github.com/lib/pq"
)

// DatabaseCode is a stable, client-facing classification of a database failure.
type DatabaseCode string

const (
	CodeAccessDenied            DatabaseCode = "ACCESS_DENIED"
	CodeDuplicateRecord         DatabaseCode = "DUPLICATE_RECORD"
	CodeInvalidReference        DatabaseCode = "INVALID_REFERENCE"
	CodeInvalidData             DatabaseCode = "INVALID_DATA"
	CodeInsufficientPermissions DatabaseCode = "INSUFFICIENT_PERMISSIONS"
	CodeUnknown                 DatabaseCode = "UNKNOWN_ERROR"
)

var databaseMessages = map[DatabaseCode]string{
	CodeAccessDenied:            "Access denied or record not found",
	CodeDuplicateRecord:         "A record with this information already exists",
	CodeInvalidReference:        "Invalid reference to related data",
	CodeInvalidData:             "Invalid data provided",
	CodeInsufficientPermissions: "Insufficient permissions for this operation",
	CodeUnknown:                 "An unexpected error occurred",
}

// ClassifyDatabase maps a driver error onto a DatabaseCode.
func ClassifyDatabase(err error) DatabaseCode {
	if err == nil {
		return ""
	}
	if stderrors.Is(err, sql.ErrNoRows) {
		return CodeAccessDenied
	}

	var pqErr *pq.Error
	if !stderrors.As(err, &pqErr) {
		return CodeUnknown
	}
	switch pqErr.Code {
	case "23505":
		return CodeDuplicateRecord
	case "23503":
		return CodeInvalidReference
	case "23514":
		return CodeInvalidData
	case "42501":
		return CodeInsufficientPermissions
	default:
		return CodeUnknown
	}
}

// DatabaseMessage returns a message for err that is safe to show to clients.
func DatabaseMessage(err error) string {
	return databaseMessages[ClassifyDatabase(err)]
}
