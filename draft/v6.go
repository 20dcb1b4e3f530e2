package draft

import (
	"encoding/binary"
	"time"

	"github.com/Lzww0608/uuidx"
)

/*
    0                   1                   2                   3
    0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
   +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
   |                           time_high                           |
   +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
   |           time_mid            |      time_low_and_version     |
   +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
   |clk_seq_hi_res |  clk_seq_low  |         node (0-1)            |
   +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
   |                         node (2-5)                            |
   +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
*/

// NewV6 builds a version 6 UUID from the same inputs as uuidx.NewV1.
// The 60-bit timestamp is written most significant bits first so byte
// order matches time order.
func NewV6(timestamp uint64, clockSeq uint16, node [6]byte) uuidx.UUID {
	var uuid uuidx.UUID

	// time_high and time_mid take the top 48 bits, time_low the last 12
	binary.BigEndian.PutUint64(uuid[0:8], (timestamp&(1<<60-1))>>12<<16)
	binary.BigEndian.PutUint16(uuid[6:8], uint16(timestamp&0x0fff))

	binary.BigEndian.PutUint16(uuid[8:10], clockSeq)
	copy(uuid[10:], node[:])
	return uuidx.SetVersionVariant(uuid, VersionReorderedTime)
}

// Timestamp returns the 60-bit timestamp of a version 6 UUID
func Timestamp(u uuidx.UUID) uint64 {
	high := binary.BigEndian.Uint64(u[0:8]) >> 16 // time_high and time_mid, 48 bits
	return high<<12 | uint64(u[6]&0x0f)<<8 | uint64(u[7])
}

// TimeV6 returns the creation time of a version 6 UUID, zero for other versions
func TimeV6(u uuidx.UUID) time.Time {
	if u.Version() != VersionReorderedTime {
		return time.Time{}
	}
	return uuidx.TimeFromTimestamp(Timestamp(u))
}

// FromV1 reorders a version 1 UUID into the equivalent version 6 UUID.
// Clock sequence and node are carried over unchanged.
func FromV1(u uuidx.UUID) uuidx.UUID {
	return NewV6(u.Timestamp(), u.ClockSequence(), u.NodeID())
}

// ToV1 reorders a version 6 UUID back into version 1 layout
func ToV1(u uuidx.UUID) uuidx.UUID {
	return uuidx.NewV1(Timestamp(u), u.ClockSequence(), u.NodeID())
}
