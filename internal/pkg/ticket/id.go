// Package ticket issues ticket identifiers and the QR code images that carry them.
package ticket

import (
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	DefaultPrefix = "ZUN"

	randomLength = 6
	base36       = "0123456789abcdefghijklmnopqrstuvwxyz"
)

var idPattern = regexp.MustCompile(`^[A-Z0-9]+-[0-9A-Z]+-[0-9A-Z]{6}$`)

// IDGenerator builds identifiers of the form PREFIX-<base36 millis>-<random>.
// Uniqueness is probabilistic; callers do not check storage before inserting.
type IDGenerator struct {
	prefix string
	now    func() time.Time

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewIDGenerator(prefix string) *IDGenerator {
	if prefix == "" {
		prefix = DefaultPrefix
	}

	return &IDGenerator{
		prefix: strings.ToUpper(prefix),
		now:    time.Now,
		rnd:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// WithClock replaces the time source, mostly for tests.
func (g *IDGenerator) WithClock(now func() time.Time) *IDGenerator {
	g.now = now
	return g
}

// WithSource replaces the random source, mostly for tests.
func (g *IDGenerator) WithSource(src rand.Source) *IDGenerator {
	g.mu.Lock()
	g.rnd = rand.New(src)
	g.mu.Unlock()
	return g
}

func (g *IDGenerator) Prefix() string {
	return g.prefix
}

func (g *IDGenerator) Generate() string {
	timestamp := strconv.FormatInt(g.now().UnixMilli(), 36)

	suffix := make([]byte, randomLength)
	g.mu.Lock()
	for i := range suffix {
		suffix[i] = base36[g.rnd.IntN(len(base36))]
	}
	g.mu.Unlock()

	return strings.ToUpper(g.prefix + "-" + timestamp + "-" + string(suffix))
}

// IsValidID reports whether id has the shape produced by an IDGenerator.
func IsValidID(id string) bool {
	return idPattern.MatchString(id)
}
