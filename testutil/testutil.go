package testutil

import (
	"math/rand"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// UUID returns a random UUID with the given version nibble and the RFC4122
// variant bits set. version is masked to 4 bits.
func (r *RNG) UUID(version uint8) uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.uuidLocked(version)
}

func (r *RNG) uuidLocked(version uint8) uuid.UUID {
	var u uuid.UUID
	_, _ = r.rand.Read(u[:])
	u[6] = (u[6] & 0x0f) | (version&0x0f)<<4
	u[8] = (u[8] & 0x3f) | 0x80
	return u
}

// UUIDStrings generates num canonical UUID strings of the given version.
// Locks only once per call.
func (r *RNG) UUIDStrings(num int, version uint8) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, num)
	for i := range num {
		out[i] = r.uuidLocked(version).String()
	}
	return out
}

// MixedCase returns s with each letter randomly upper- or lower-cased.
func (r *RNG) MixedCase(s string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var sb strings.Builder
	sb.Grow(len(s))
	for _, c := range s {
		if r.rand.Intn(2) == 0 {
			sb.WriteString(strings.ToUpper(string(c)))
		} else {
			sb.WriteRune(c)
		}
	}
	return sb.String()
}
