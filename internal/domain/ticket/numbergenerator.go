package ticket

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type NumberGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// DefaultNumberGenerator issues T-YYYYMMDD-NNNN numbers from an in-process
// per-day counter. Uniqueness across restarts is enforced by the unique index
// on the tickets table.
type DefaultNumberGenerator struct {
	mu       sync.Mutex
	counters map[string]int
}

func NewDefaultNumberGenerator() *DefaultNumberGenerator {
	return &DefaultNumberGenerator{
		counters: make(map[string]int),
	}
}

func (g *DefaultNumberGenerator) Generate(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	dateKey := time.Now().UTC().Format("20060102")

	g.counters[dateKey]++

	return fmt.Sprintf("T-%s-%04d", dateKey, g.counters[dateKey]), nil
}
