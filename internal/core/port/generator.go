package port

import (
	"context"

	"github.com/shopspring/decimal"

	"automark/internal/core/domain"
)

// TextGenerator is the external text-generation service. It returns the
// raw model output for a prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// StrategyGenerator produces strategies, insights and copy. Implementations
// never fail: when generation degrades they return canned output.
type StrategyGenerator interface {
	GenerateStrategy(ctx context.Context, goal, audience string, budget decimal.Decimal) domain.Strategy
	GenerateInsight(ctx context.Context, summary domain.PerformanceSummary) string
	GenerateAdCopy(ctx context.Context, product, audience, platform string) []string
}
