package uuidx

import (
	"fmt"
	"time"
)

// UUID represents a Universally Unique Identifier as defined by RFC 4122.
// The 16 bytes are stored most significant byte first, so comparing two
// UUIDs byte by byte is the same as comparing their RFC fields in order.
type UUID [16]byte

// Version represents the UUID version stored in the high nibble of byte 6
type Version byte

const (
	VersionNil Version = iota
	VersionTimeBased
	VersionDCESecurity
	VersionNameBasedMD5
	VersionRandom
	VersionNameBasedSHA1
)

// String returns a human readable name of the version
func (v Version) String() string {
	switch v {
	case VersionNil:
		return "Nil"
	case VersionTimeBased:
		return "TimeBased"
	case VersionDCESecurity:
		return "DCESecurity"
	case VersionNameBasedMD5:
		return "NameBasedMD5"
	case VersionRandom:
		return "Random"
	case VersionNameBasedSHA1:
		return "NameBasedSHA1"
	}
	return fmt.Sprintf("Version(%d)", byte(v))
}

// Variant represents the UUID variant
type Variant byte

const (
	VariantNCS Variant = iota
	VariantRFC4122
	VariantMicrosoft
	VariantFuture
)

// String returns a human readable name of the variant
func (v Variant) String() string {
	switch v {
	case VariantNCS:
		return "NCS"
	case VariantRFC4122:
		return "RFC4122"
	case VariantMicrosoft:
		return "Microsoft"
	case VariantFuture:
		return "Future"
	}
	return fmt.Sprintf("Variant(%d)", byte(v))
}

// Nil is the nil UUID (all zeros)
var Nil UUID

// Version returns the version of the UUID.
// The value is whatever the creator wrote; it is not validated.
func (u UUID) Version() Version {
	return Version(u[6] >> 4)
}

// Variant returns the variant of the UUID
func (u UUID) Variant() Variant {
	switch {
	case (u[8] & 0x80) == 0x00:
		return VariantNCS
	case (u[8] & 0xc0) == 0x80:
		return VariantRFC4122
	case (u[8] & 0xe0) == 0xc0:
		return VariantMicrosoft
	default:
		return VariantFuture
	}
}

// FromArray returns the UUID holding b. Every 16 byte pattern is a valid UUID.
func FromArray(b [16]byte) UUID {
	return UUID(b)
}

// Array returns the UUID as a 16 byte big-endian array
func (u UUID) Array() [16]byte {
	return u
}

// Bytes returns the UUID as a byte slice
func (u UUID) Bytes() []byte {
	return u[:]
}

// FromBytes creates a UUID from a byte slice
func FromBytes(b []byte) (UUID, error) {
	var uuid UUID
	if len(b) != 16 {
		return uuid, ErrInvalidLength
	}
	copy(uuid[:], b)
	return uuid, nil
}

// MustFromBytes is like FromBytes but panics on error
func MustFromBytes(b []byte) UUID {
	uuid, err := FromBytes(b)
	if err != nil {
		panic(err)
	}
	return uuid
}

// IsNil returns true if the UUID is the nil UUID (all zeros)
func (u UUID) IsNil() bool {
	return u == Nil
}

// Compare returns an integer comparing two UUIDs lexicographically.
// The result will be 0 if u==other, -1 if u < other, and +1 if u > other.
func (u UUID) Compare(other UUID) int {
	for i := 0; i < 16; i++ {
		if u[i] < other[i] {
			return -1
		}
		if u[i] > other[i] {
			return 1
		}
	}
	return 0
}

// Equal returns true if u and other represent the same UUID
func (u UUID) Equal(other UUID) bool {
	return u == other
}

// Timestamp returns the 60-bit count of 100ns intervals since 1582-10-15
// as laid out by a version 1 UUID. For other versions the value has no meaning.
func (u UUID) Timestamp() uint64 {
	return uint64(u[6]&0x0f)<<56 |
		uint64(u[7])<<48 |
		uint64(u[4])<<40 |
		uint64(u[5])<<32 |
		uint64(u[0])<<24 |
		uint64(u[1])<<16 |
		uint64(u[2])<<8 |
		uint64(u[3])
}

// ClockSequence returns the 14-bit clock sequence of a time based UUID
func (u UUID) ClockSequence() uint16 {
	return uint16(u[8]&0x3f)<<8 | uint16(u[9])
}

// NodeID returns the 48-bit node field
func (u UUID) NodeID() [6]byte {
	var node [6]byte
	copy(node[:], u[10:])
	return node
}

// Time returns the creation time of a version 1 UUID.
// The zero time is returned for any other version.
func (u UUID) Time() time.Time {
	if u.Version() != VersionTimeBased {
		return time.Time{}
	}
	return TimeFromTimestamp(u.Timestamp())
}
