package repository

import (
	"auth-web-server/internal/ports"
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/lib/pq"
)

const uniqueViolation pq.ErrorCode = "23505"

// classify помечает ошибку драйвера одной из сентинельных ошибок,
// чтобы сервис мог отличить дубликат и недоступность БД от прочих сбоев
func classify(err error) error {
	switch {
	case isUniqueViolation(err):
		return fmt.Errorf("%w: %w", ports.ErrDuplicateIdentifier, err)
	case isConnectionError(err):
		return fmt.Errorf("%w: %w", ports.ErrStoreUnavailable, err)
	default:
		return err
	}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func isConnectionError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code.Class() == "08": // connection_exception
			return true
		case pqErr.Code == "57P01", pqErr.Code == "57P02", pqErr.Code == "57P03", pqErr.Code == "53300":
			return true
		}
		return false
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
