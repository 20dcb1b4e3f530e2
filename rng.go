package uuidx

import (
	"crypto/rand"
	"io"

	"golang.org/x/crypto/chacha20"
)

// rekeyAfter bounds the keystream produced under one key, far below the
// point where the 32-bit ChaCha20 block counter would wrap
const rekeyAfter = 1 << 30

// Rng is a ChaCha20 based CSPRNG for generating many UUIDs quickly.
// An Rng is not safe for concurrent use; see generator.Random for a
// locked wrapper.
type Rng struct {
	cipher *chacha20.Cipher
	used   uint64
}

// NewRng returns an Rng seeded from crypto/rand
func NewRng() (*Rng, error) {
	var seed [chacha20.KeySize]byte
	if _, err := io.ReadFull(rand.Reader, seed[:]); err != nil {
		return nil, &RandomSourceError{Err: err}
	}
	return NewRngFromSeed(seed), nil
}

// NewRngFromSeed returns an Rng whose output is fully determined by seed.
// Providing a good seed is up to the caller: a guessable seed gives
// guessable UUIDs.
func NewRngFromSeed(seed [32]byte) *Rng {
	r := &Rng{}
	r.rekey(seed)
	return r
}

// Read fills p with keystream bytes. It never fails.
func (r *Rng) Read(p []byte) (int, error) {
	r.fill(p)
	return len(p), nil
}

func (r *Rng) fill(p []byte) {
	if r.used+uint64(len(p)) > rekeyAfter {
		var key [chacha20.KeySize]byte
		r.cipher.XORKeyStream(key[:], key[:])
		r.rekey(key)
	}
	clear(p)
	r.cipher.XORKeyStream(p, p)
	r.used += uint64(len(p))
}

func (r *Rng) rekey(key [chacha20.KeySize]byte) {
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		// key and nonce sizes are fixed by the array types
		panic(err)
	}
	r.cipher = c
	r.used = 0
}
