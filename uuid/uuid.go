// Package uuid generates identifiers that sort by creation time.
package uuid

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/eagleviewent/go-utilities/errors"
	"github.com/gofrs/uuid/v5"
)

// UUID is a RFC 9562 UUID.
type UUID = uuid.UUID

// Nil is the all zero UUID.
var Nil = uuid.Nil

// sequentialOffset is where the timestamp starts in a sequential UUID.
// SQL Server orders uniqueidentifier columns by these last six bytes first.
const sequentialOffset = 10

// NewSequential returns a random UUID whose last six bytes hold the
// current Unix time in milliseconds, most significant byte first.
// SQL Server compares those bytes first and in that order, so values
// created later sort after earlier ones in uniqueidentifier columns.
func NewSequential() (UUID, error) {
	return newSequentialAt(time.Now())
}

func newSequentialAt(t time.Time) (UUID, error) {
	u, err := uuid.NewV4()
	if err != nil {
		return Nil, fmt.Errorf("new v4: %w", err)
	}

	var ts [8]byte

	binary.BigEndian.PutUint64(ts[:], uint64(t.UnixMilli()))

	copy(u[sequentialOffset:], ts[8-(len(u)-sequentialOffset):])

	return u, nil
}

// NewOrdered returns a version 7 UUID, which sorts by creation time
// in its textual and binary forms.
func NewOrdered() (UUID, error) {
	u, err := uuid.NewV7()
	if err != nil {
		return Nil, fmt.Errorf("new v7: %w", err)
	}

	return u, nil
}

// Must returns u if err is nil and panics otherwise.
func Must(u UUID, err error) UUID {
	if err != nil {
		panic(err)
	}

	return u
}

// Timestamp returns the creation time embedded by NewSequential, or by
// NewOrdered for version 7 ids.
func Timestamp(u UUID) time.Time {
	const msBytes = 6

	field := u[sequentialOffset:]
	if u.Version() == uuid.V7 {
		field = u[:msBytes]
	}

	var ts [8]byte

	copy(ts[8-msBytes:], field)

	return time.UnixMilli(int64(binary.BigEndian.Uint64(ts[:])))
}

// Parse parses s in any of the textual forms accepted by FromString.
func Parse(s string) (UUID, error) {
	u, err := uuid.FromString(s)
	if err != nil {
		return Nil, fmt.Errorf("%w: %w", errors.NewInvalidValue("UUID", s), err)
	}

	return u, nil
}
