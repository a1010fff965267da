// Package factories generates realistic platform records for the sandbox API.
package factories

import (
	"math/rand"
	"time"

	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
)

// Factory draws every record from one seeded source. Two factories with the
// same seed produce the same records apart from their ids.
type Factory struct {
	fake faker.Faker
	rng  *rand.Rand
	now  time.Time
}

func New(seed int64, now time.Time) *Factory {
	return &Factory{
		fake: faker.NewWithSeed(rand.NewSource(seed)),
		rng:  rand.New(rand.NewSource(seed)),
		now:  now,
	}
}

func (f *Factory) ID() string {
	return cuid.New()
}

func (f *Factory) pick(values []string) string {
	return values[f.rng.Intn(len(values))]
}

// chance reports true with probability p.
func (f *Factory) chance(p float64) bool {
	return f.rng.Float64() < p
}

func (f *Factory) pastTime(maxAge time.Duration) time.Time {
	return f.now.Add(-time.Duration(f.rng.Int63n(int64(maxAge))))
}

func (f *Factory) phone() string {
	return "0" + f.fake.Numerify("#########")
}
