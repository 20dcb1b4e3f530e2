package generator

import (
	"io"
	"sync"

	"github.com/Lzww0608/uuidx"
)

// Random generates version 4 UUIDs from a shared ChaCha20 Rng.
// It is safe for concurrent use.
type Random struct {
	mu  sync.Mutex
	rng *uuidx.Rng
}

// NewRandom creates a Random generator seeded from the configured reader,
// or from WithSeed when given
func NewRandom(opts ...Option) (*Random, error) {
	o := newOptions(opts)
	if o.seed != nil {
		return &Random{rng: uuidx.NewRngFromSeed(*o.seed)}, nil
	}
	var seed [32]byte
	if _, err := io.ReadFull(o.reader, seed[:]); err != nil {
		return nil, &uuidx.RandomSourceError{Err: err}
	}
	return &Random{rng: uuidx.NewRngFromSeed(seed)}, nil
}

// NewV4 returns the next random UUID
func (r *Random) NewV4() uuidx.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return uuidx.NewV4FromRng(r.rng)
}
