package services

import (
	"context"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"deskd/internal/shared/biztime"
)

// TicketNumberGenerator issues T-YYYYMMDD-NNNN numbers. The per-day
// sequence is seeded from the database once and advanced in memory.
type TicketNumberGenerator struct {
	db    *gorm.DB
	mu    sync.Mutex
	cache map[string]int
}

func NewTicketNumberGenerator(db *gorm.DB) *TicketNumberGenerator {
	return &TicketNumberGenerator{
		db:    db,
		cache: make(map[string]int),
	}
}

func (g *TicketNumberGenerator) Generate(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	dateStr := biztime.NowUTC().Format("20060102")

	seq, err := g.getNextSequence(ctx, dateStr)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("T-%s-%04d", dateStr, seq), nil
}

func (g *TicketNumberGenerator) getNextSequence(ctx context.Context, dateStr string) (int, error) {
	if seq, ok := g.cache[dateStr]; ok {
		g.cache[dateStr] = seq + 1
		return seq + 1, nil
	}

	var maxNumber string
	pattern := fmt.Sprintf("T-%s-%%", dateStr)

	err := g.db.WithContext(ctx).
		Table("tickets").
		Select("MAX(number)").
		Where("number LIKE ?", pattern).
		Scan(&maxNumber).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return 0, fmt.Errorf("failed to get max ticket number: %w", err)
	}

	seq := 1
	if maxNumber != "" {
		fmt.Sscanf(maxNumber, fmt.Sprintf("T-%s-%%d", dateStr), &seq)
		seq++
	}

	g.cache[dateStr] = seq
	return seq, nil
}
