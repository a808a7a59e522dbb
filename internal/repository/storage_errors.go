package repository

import (
	"database/sql/driver"
	"errors"
	"net"

	"tech100/internal/domain"

	"github.com/lib/pq"
)

// transient pq codes: connection_exception class, admin shutdown,
// query cancellation, too many connections
var transientPqCodes = map[string]bool{
	"57P01": true,
	"57014": true,
	"53300": true,
}

// ErrorKind classifies a storage failure so the orchestrator can decide
// whether to retry without matching vendor error text.
func ErrorKind(err error) domain.ErrorKind {
	if err == nil {
		return domain.ErrorKindUnknown
	}

	var storageErr domain.StorageError
	if errors.As(err, &storageErr) {
		return storageErr.Kind
	}

	if errors.Is(err, driver.ErrBadConn) {
		return domain.ErrorKindTransient
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.ErrorKindTransient
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code.Class() == "08" || transientPqCodes[string(pqErr.Code)] {
			return domain.ErrorKindTransient
		}
	}

	return domain.ErrorKindUnknown
}

// wrapStorageErr attaches the typed kind to errors leaving the
// repository layer.
func wrapStorageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return domain.StorageError{
		Op:   op,
		Kind: ErrorKind(err),
		Err:  err,
	}
}
