package generator

import (
	"encoding/binary"
	"io"
	"sync"
	"time"

	"github.com/Lzww0608/uuidx"
	"github.com/Lzww0608/uuidx/draft"
)

// maxUnixMilli is the largest value of the 48-bit unix_ts_ms field
const maxUnixMilli = 1<<48 - 1

// Monotonic is a thread-safe UUIDv7 generator that keeps UUIDs strictly
// increasing within the same millisecond by using a 12-bit counter in the
// rand_a field.
type Monotonic struct {
	mu            sync.Mutex
	lastTimestamp uint64
	counter       uint16 // 12-bit counter for sub-millisecond ordering
	reader        io.Reader
	now           func() time.Time
}

// NewMonotonic creates a Monotonic generator with crypto/rand as the random source
func NewMonotonic(opts ...Option) *Monotonic {
	o := newOptions(opts)
	return &Monotonic{
		reader: o.reader,
		now:    o.now,
	}
}

// New generates a new UUIDv7 with the current timestamp
func (g *Monotonic) New() (uuidx.UUID, error) {
	return g.NewWithTime(g.now())
}

// NewWithTime generates a new UUIDv7 with the specified timestamp.
// If t is not after the last timestamp used, the last timestamp is reused
// and the counter is incremented, so the result is always greater than
// every UUID previously returned by g.
// Times before 1970 or past the 48-bit millisecond field fail with
// uuidx.ErrTimeOutOfRange and leave g unchanged.
func (g *Monotonic) NewWithTime(t time.Time) (uuidx.UUID, error) {
	ms := t.UnixMilli()
	if ms < 0 || ms > maxUnixMilli {
		return uuidx.Nil, uuidx.ErrTimeOutOfRange
	}
	timestamp := uint64(ms)

	g.mu.Lock()
	defer g.mu.Unlock()

	if timestamp <= g.lastTimestamp {
		timestamp = g.lastTimestamp
		// counter overflow borrows the next millisecond
		if g.counter >= 0xfff {
			if timestamp >= maxUnixMilli {
				return uuidx.Nil, uuidx.ErrTimeOutOfRange
			}
			g.counter = 0
			timestamp++
			g.lastTimestamp = timestamp
		} else {
			g.counter++
		}
	} else {
		/*
		 *The 12-bit rand_a field and the 62-bit rand_b field SHOULD be filled with
		 *random data, such as from a cryptographically secure random number generator.
		 */
		var seed [2]byte
		if _, err := io.ReadFull(g.reader, seed[:]); err != nil {
			return uuidx.Nil, &uuidx.RandomSourceError{Err: err}
		}
		// keep the top bit clear so a fresh millisecond leaves room to count
		g.counter = binary.BigEndian.Uint16(seed[:]) & 0x7ff
		g.lastTimestamp = timestamp
	}

	var randB [8]byte
	if _, err := io.ReadFull(g.reader, randB[:]); err != nil {
		return uuidx.Nil, &uuidx.RandomSourceError{Err: err}
	}
	return draft.NewV7FromParts(timestamp, g.counter, randB), nil
}
