package ids

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Generator mints identifiers for saved carts and orders. The two
// namespaces never overlap, even for tokens minted at the same instant.
type Generator interface {
	CartID() string
	OrderID() string
}

type tokenGenerator struct {
	now func() time.Time
}

// NewGenerator returns the default clock-plus-random token generator.
func NewGenerator() Generator {
	return &tokenGenerator{now: time.Now}
}

// NewGeneratorWithClock allows tests to pin the clock component.
func NewGeneratorWithClock(now func() time.Time) Generator {
	if now == nil {
		now = time.Now
	}
	return &tokenGenerator{now: now}
}

func (g *tokenGenerator) CartID() string {
	return g.token("cart")
}

func (g *tokenGenerator) OrderID() string {
	return g.token("order")
}

func (g *tokenGenerator) token(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s_%d_%s", prefix, g.now().UnixMilli(), suffix)
}
