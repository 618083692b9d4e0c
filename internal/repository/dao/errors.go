package dao

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrAttendanceNotFound  = errors.New("attendance record not found")
	ErrTicketIDExists      = errors.New("ticket id already exists")
	// ErrStatusConflict means a conditional update matched no row because the
	// participant's status changed since it was read.
	ErrStatusConflict       = errors.New("participant status changed concurrently")
	ErrOpenAttendanceExists = errors.New("participant already has an open attendance record")
)

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return false
	}

	return pgErr.ConstraintName == constraint || strings.Contains(pgErr.Message, `"`+constraint+`"`)
}
