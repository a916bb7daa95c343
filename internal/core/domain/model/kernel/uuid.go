package kernel

import (
	"encoding/binary"
	"fmt"

	"fieldservice/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not properly initialized through one of the constructor functions.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError(
	"UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes",
)

// UUID is a value object that represents a universally unique identifier.
// It wraps github.com/google/uuid; the zero value is invalid.
//
// UUID is comparable and can be used as a map key, which the eligibility
// engine relies on for its scheduled-job sets.
//
// Example usage:
//
//	accountID := kernel.NewUUID()
//	jobID, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    // handle error
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random UUID (version 4).
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses a UUID from its string representation.
// The nil UUID is rejected.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("uuid", fmt.Errorf("invalid UUID format: %w", err))
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}
	return newID, nil
}

// UUIDFromBytes restores a UUID from its raw 16 bytes, typically read from storage.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("uuid", fmt.Errorf("invalid UUID format: %w", err))
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying google UUID, the representation used by DTOs.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// LockKey folds the identifier into a signed 64-bit key suitable for
// database advisory locks.
func (u UUID) LockKey() int64 {
	return int64(binary.BigEndian.Uint64(u.id[:8]) ^ binary.BigEndian.Uint64(u.id[8:])) //nolint:gosec // hashing only
}

func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

func (u UUID) IsZero() bool {
	return u.id == uuid.Nil
}

func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

// Ptr returns a pointer to a copy of u, handy for optional references.
func (u UUID) Ptr() *UUID {
	return &u
}

// UUIDFromPtr converts an optional google UUID read from storage.
func UUIDFromPtr(id *uuid.UUID) (*UUID, error) {
	if id == nil {
		return nil, nil //nolint:nilnil // absent reference is not an error
	}
	restored, err := UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	return &restored, nil
}

// PtrBytes converts an optional UUID into the DTO representation.
func PtrBytes(id *UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}
