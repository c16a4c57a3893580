package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"automark/internal/core/domain"
	"automark/internal/core/port"
	"automark/internal/metrics"
)

const (
	fallbackTimeline = "4 weeks"
	fallbackInsight  = "Based on the performance data, your campaigns are showing engagement patterns. " +
		"Consider optimizing budget allocation to top-performing channels and refining targeting parameters for better results."
)

var fallbackAllocation = map[domain.Channel]float64{
	domain.ChannelGoogleAds:   40,
	domain.ChannelMetaAds:     30,
	domain.ChannelLinkedInAds: 20,
	domain.ChannelEmail:       10,
}

// StrategyService turns text generation into strategies, insights and ad
// copy. It never fails: any generator error or unusable output yields the
// canned result.
type StrategyService struct {
	gen     port.TextGenerator
	timeout time.Duration
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewStrategyService wraps gen, which may be nil when no generator is
// configured.
func NewStrategyService(gen port.TextGenerator, timeout time.Duration, m *metrics.Metrics, logger *slog.Logger) *StrategyService {
	return &StrategyService{
		gen:     gen,
		timeout: timeout,
		metrics: m,
		logger:  logger.With(slog.String("component", "strategy")),
	}
}

// FallbackStrategy is the canned strategy used when generation fails.
func FallbackStrategy() domain.Strategy {
	alloc := make(map[domain.Channel]float64, len(fallbackAllocation))
	for c, p := range fallbackAllocation {
		alloc[c] = p
	}
	return domain.Strategy{
		Summary:          "Multi-channel digital marketing approach",
		Channels:         append([]domain.Channel(nil), domain.Channels...),
		Timeline:         fallbackTimeline,
		BudgetAllocation: alloc,
		TargetingSuggestions: []string{
			"Demographics: Age 25-45, Urban professionals",
			"Interests: Technology, Business growth",
			"Behaviors: Frequent online shoppers",
		},
	}
}

// FallbackAdCopy is the canned ad copy used when generation fails.
func FallbackAdCopy(product, audience string) []string {
	return []string{
		fmt.Sprintf("Discover %s - Perfect for %s!", product, audience),
		fmt.Sprintf("Transform your business with %s", product),
		fmt.Sprintf("Join thousands who trust %s", product),
	}
}

func (s *StrategyService) generate(ctx context.Context, prompt string) (string, error) {
	if s.gen == nil {
		return "", fmt.Errorf("%w: no generator configured", domain.ErrGenerationFallback)
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return s.gen.Generate(ctx, prompt)
}

func (s *StrategyService) fallback(kind string, err error) {
	s.metrics.IncGenerationFallback(kind)
	s.logger.Warn("generation fell back", slog.String("kind", kind), slog.Any("error", err))
}

func (s *StrategyService) GenerateStrategy(ctx context.Context, goal, audience string, budget decimal.Decimal) domain.Strategy {
	prompt := fmt.Sprintf(`Create a comprehensive digital marketing campaign plan in JSON format for:

Business Goal: %s
Target Audience: %s
Budget: $%s

Return ONLY a valid JSON object with the following structure:
{
  "strategy": "Brief strategy description",
  "channels": ["Google Ads", "Meta Ads", "LinkedIn Ads", "Email Marketing"],
  "timeline": "Campaign duration",
  "budget_allocation": {"Google Ads": 40, "Meta Ads": 30, "LinkedIn Ads": 20, "Email Marketing": 10},
  "targeting_suggestions": ["Demographics suggestion", "Interests suggestion", "Behaviors suggestion"]
}`, goal, audience, budget.StringFixed(2))

	text, err := s.generate(ctx, prompt)
	if err != nil {
		s.fallback("strategy", err)
		return FallbackStrategy()
	}
	raw, err := extractJSON(text, '{')
	if err != nil {
		s.fallback("strategy", err)
		return FallbackStrategy()
	}
	var st domain.Strategy
	if err = json.Unmarshal(raw, &st); err != nil {
		s.fallback("strategy", fmt.Errorf("%w: %v", domain.ErrGenerationFallback, err))
		return FallbackStrategy()
	}
	return normalizeStrategy(st)
}

// normalizeStrategy fills gaps in a generated strategy and rescales its
// allocation to whole percentages summing to 100 over its channels.
func normalizeStrategy(st domain.Strategy) domain.Strategy {
	canned := FallbackStrategy()
	if len(st.Channels) == 0 {
		st.Channels = canned.Channels
	}
	if st.Summary == "" {
		st.Summary = canned.Summary
	}
	if st.Timeline == "" {
		st.Timeline = canned.Timeline
	}
	if len(st.TargetingSuggestions) == 0 {
		st.TargetingSuggestions = canned.TargetingSuggestions
	}
	st.BudgetAllocation = rescaleAllocation(st.Channels, st.BudgetAllocation)
	return st
}

// rescaleAllocation keeps the weights of channels and distributes 100
// points with the largest-remainder method. Without usable weights the
// points are split evenly.
func rescaleAllocation(channels []domain.Channel, alloc map[domain.Channel]float64) map[domain.Channel]float64 {
	weights := make([]float64, len(channels))
	total := 0.0
	for i, c := range channels {
		if w := alloc[c]; w > 0 && !math.IsInf(w, 0) {
			weights[i] = w
			total += w
		}
	}
	if total == 0 {
		for i := range weights {
			weights[i] = 1
		}
		total = float64(len(channels))
	}

	type share struct {
		idx  int
		frac float64
	}
	out := make(map[domain.Channel]float64, len(channels))
	shares := make([]share, len(channels))
	assigned := 0
	for i, c := range channels {
		exact := weights[i] / total * 100
		whole := math.Floor(exact)
		out[c] = whole
		assigned += int(whole)
		shares[i] = share{idx: i, frac: exact - whole}
	}
	sort.SliceStable(shares, func(a, b int) bool { return shares[a].frac > shares[b].frac })
	for i := 0; assigned < 100 && len(shares) > 0; i = (i + 1) % len(shares) {
		out[channels[shares[i].idx]]++
		assigned++
	}
	return out
}

func (s *StrategyService) GenerateInsight(ctx context.Context, summary domain.PerformanceSummary) string {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		s.fallback("insight", err)
		return fallbackInsight
	}
	prompt := fmt.Sprintf(`Analyze this campaign performance data and provide actionable insights:

%s

Provide a concise analysis focusing on:
- Key performance trends
- Optimization recommendations
- Budget allocation suggestions
- Next steps for improvement

Keep the response under 200 words and actionable.`, data)

	text, err := s.generate(ctx, prompt)
	if err != nil {
		s.fallback("insight", err)
		return fallbackInsight
	}
	return strings.TrimSpace(text)
}

func (s *StrategyService) GenerateAdCopy(ctx context.Context, product, audience, platform string) []string {
	prompt := fmt.Sprintf(`Generate 3 compelling ad copy variations for %s:

Product/Service: %s
Target Audience: %s
Platform: %s

Return ONLY a JSON array of 3 strings, each being a complete ad copy. Example format:
["Ad copy 1", "Ad copy 2", "Ad copy 3"]`, platform, product, audience, platform)

	text, err := s.generate(ctx, prompt)
	if err != nil {
		s.fallback("ad_copy", err)
		return FallbackAdCopy(product, audience)
	}
	raw, err := extractJSON(text, '[')
	if err != nil {
		s.fallback("ad_copy", err)
		return FallbackAdCopy(product, audience)
	}
	var copies []string
	if err = json.Unmarshal(raw, &copies); err != nil || len(copies) == 0 {
		s.fallback("ad_copy", fmt.Errorf("%w: unusable ad copy array", domain.ErrGenerationFallback))
		return FallbackAdCopy(product, audience)
	}
	out := copies[:0]
	for _, c := range copies {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		s.fallback("ad_copy", fmt.Errorf("%w: empty ad copy", domain.ErrGenerationFallback))
		return FallbackAdCopy(product, audience)
	}
	return out
}
