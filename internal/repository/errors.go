package repository

import (
	"errors"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const uniqueViolationMsg = "UNIQUE constraint failed"

// isUniqueViolation reports whether err is a sqlite UNIQUE or PRIMARY KEY
// conflict. Errors that did not come from the driver are matched by message.
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
	}
	return strings.Contains(err.Error(), uniqueViolationMsg)
}
