package draft

import (
	"encoding/binary"
	"errors"
	"io"
	"time"

	"github.com/Lzww0608/uuidx"
)

var errNilReader = errors.New("nil reader")

// NewV7FromParts builds a version 7 UUID from a 48-bit Unix millisecond
// timestamp, the 12-bit rand_a field and the 62 low bits of randB.
// Higher bits of unixMilli and randA are ignored.
func NewV7FromParts(unixMilli uint64, randA uint16, randB [8]byte) uuidx.UUID {
	var uuid uuidx.UUID

	// unix_ts_ms occupies bytes 0-5
	binary.BigEndian.PutUint64(uuid[0:8], unixMilli<<16)
	binary.BigEndian.PutUint16(uuid[6:8], randA&0x0fff)
	copy(uuid[8:], randB[:])

	return uuidx.SetVersionVariant(uuid, VersionUnixTime)
}

// NewV7 builds a version 7 UUID for unixMilli with the remaining 74 bits
// read from r. Reader failures are returned as *uuidx.RandomSourceError.
func NewV7(unixMilli uint64, r io.Reader) (uuidx.UUID, error) {
	var rnd [10]byte
	if r == nil {
		return uuidx.Nil, &uuidx.RandomSourceError{Err: errNilReader}
	}
	if _, err := io.ReadFull(r, rnd[:]); err != nil {
		return uuidx.Nil, &uuidx.RandomSourceError{Err: err}
	}
	var randB [8]byte
	copy(randB[:], rnd[2:])
	return NewV7FromParts(unixMilli, binary.BigEndian.Uint16(rnd[0:2]), randB), nil
}

// UnixMilli returns the 48-bit Unix millisecond timestamp of a version 7 UUID
func UnixMilli(u uuidx.UUID) uint64 {
	return binary.BigEndian.Uint64(u[0:8]) >> 16
}

// RandA returns the 12-bit rand_a field of a version 7 UUID
func RandA(u uuidx.UUID) uint16 {
	return binary.BigEndian.Uint16(u[6:8]) & 0x0fff
}

// TimeV7 returns the timestamp of a version 7 UUID, zero for other versions
func TimeV7(u uuidx.UUID) time.Time {
	if u.Version() != VersionUnixTime {
		return time.Time{}
	}
	return time.UnixMilli(int64(UnixMilli(u)))
}
