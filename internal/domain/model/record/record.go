// Package record describes greetings emitted in machine-readable form.
package record

import (
	"crypto/rand"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Record is one emitted greeting.
type Record struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Greeting  string    `json:"greeting"`
	CreatedAt time.Time `json:"created_at"`
}

// Factory stamps records with monotonic ULIDs.
// Safe for concurrent use.
type Factory struct {
	mu      sync.Mutex
	now     func() time.Time
	entropy io.Reader
}

// NewFactory returns a Factory using the wall clock and crypto/rand.
func NewFactory() *Factory {
	return NewFactoryWithClock(time.Now)
}

// NewFactoryWithClock returns a Factory reading time from now.
func NewFactoryWithClock(now func() time.Time) *Factory {
	return &Factory{
		now:     now,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// New builds a Record for name and its greeting.
func (f *Factory) New(name, greeting string) (Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ts := f.now().UTC()
	id, err := ulid.New(ulid.Timestamp(ts), f.entropy)
	if err != nil {
		return Record{}, err
	}
	return Record{
		ID:        id.String(),
		Name:      name,
		Greeting:  greeting,
		CreatedAt: ts,
	}, nil
}
