package reference

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"nirvanica/config"
	"nirvanica/shared/timezone"
)

const (
	timestampDigits = 8
	suffixLength    = 4
	suffixCharset   = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Generator mints booking references of the form
// <prefix><last 8 digits of the unix-millisecond clock><4 random base36 chars>,
// e.g. NIR45821937X4KQ. References are identifiers only; uniqueness comes
// from the millisecond clock plus the random suffix, not from a counter.
type Generator interface {
	NewReference() string
}

type generatorImpl struct {
	prefix string
	now    func() time.Time
	random *rand.Rand
}

func New(config *config.Config) Generator {
	return &generatorImpl{
		prefix: config.Ledger.ReferencePrefix,
		now:    timezone.Now,
		random: rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec
	}
}

func (g *generatorImpl) NewReference() string {
	millis := strconv.FormatInt(g.now().UnixMilli(), 10)
	if len(millis) > timestampDigits {
		millis = millis[len(millis)-timestampDigits:]
	}

	var suffix strings.Builder
	for range suffixLength {
		suffix.WriteByte(suffixCharset[g.random.Intn(len(suffixCharset))])
	}

	return g.prefix + millis + suffix.String()
}
