package dberr

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsUniqueViolation reports whether err is a unique constraint violation.
// When hints are given, the violated constraint (or the driver message) must
// mention at least one of them.
func IsUniqueViolation(err error, hints ...string) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != pgUniqueViolation {
			return false
		}
		return matchesHint(pgErr.ConstraintName+" "+pgErr.Message, hints)
	}

	errMsg := strings.ToLower(err.Error())
	duplicate := errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(errMsg, "duplicate key value") ||
		strings.Contains(errMsg, "unique constraint failed")
	if !duplicate {
		return false
	}
	return matchesHint(errMsg, hints)
}

func matchesHint(s string, hints []string) bool {
	if len(hints) == 0 {
		return true
	}
	s = strings.ToLower(s)
	for _, h := range hints {
		if strings.Contains(s, strings.ToLower(h)) {
			return true
		}
	}
	return false
}
