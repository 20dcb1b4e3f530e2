package uuidx

import (
	"crypto/rand"
	"errors"
	"io"
)

var errNilReader = errors.New("nil reader")

// NewV4 returns a random (version 4) UUID read from crypto/rand.
// An error is returned, never weaker entropy, if the system source fails.
func NewV4() (UUID, error) {
	return NewV4FromReader(rand.Reader)
}

// NewV4FromReader returns a version 4 UUID built from 16 bytes of r.
// A failing or short read is reported as *RandomSourceError and is not retried.
func NewV4FromReader(r io.Reader) (UUID, error) {
	var uuid UUID
	if r == nil {
		return Nil, &RandomSourceError{Err: errNilReader}
	}
	if _, err := io.ReadFull(r, uuid[:]); err != nil {
		return Nil, &RandomSourceError{Err: err}
	}
	return SetVersionVariant(uuid, VersionRandom), nil
}

// NewV4FromRng returns a version 4 UUID drawn from a seeded Rng.
// It is the fast path for generating many UUIDs in a loop.
func NewV4FromRng(r *Rng) UUID {
	var uuid UUID
	r.fill(uuid[:])
	return SetVersionVariant(uuid, VersionRandom)
}

// Must is a helper that wraps a call to a function returning (UUID, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = uuidx.Must(uuidx.NewV4())
func Must(uuid UUID, err error) UUID {
	if err != nil {
		panic(err)
	}
	return uuid
}
