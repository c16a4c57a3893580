package ai

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"automark/internal/core/domain"
	"automark/internal/core/port/mocks"
	"automark/internal/metrics"
)

func newService(t *testing.T, gen *mocks.MockTextGenerator) (*StrategyService, *metrics.Metrics) {
	t.Helper()
	m := metrics.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if gen == nil {
		return NewStrategyService(nil, time.Second, m, logger), m
	}
	return NewStrategyService(gen, time.Second, m, logger), m
}

func sumAllocation(a map[domain.Channel]float64) float64 {
	total := 0.0
	for _, v := range a {
		total += v
	}
	return total
}

func TestGenerateStrategyParsesWrappedJSON(t *testing.T) {
	gen := mocks.NewMockTextGenerator(t)
	gen.EXPECT().Generate(mock.Anything, mock.Anything).Return("Here is your plan:\n```json\n"+`{
		"strategy": "Search first",
		"channels": ["Google Ads", "Email"],
		"timeline": "6 weeks",
		"budget_allocation": {"Google Ads": 70, "Email": 30},
		"targeting_suggestions": ["Developers"]
	}`+"\n```", nil).Once()
	svc, _ := newService(t, gen)

	st := svc.GenerateStrategy(context.Background(), "Grow signups", "Developers", decimal.NewFromInt(1000))
	assert.Equal(t, "Search first", st.Summary)
	assert.Equal(t, []domain.Channel{domain.ChannelGoogleAds, domain.ChannelEmail}, st.Channels)
	assert.Equal(t, "6 weeks", st.Timeline)
	assert.Equal(t, 70.0, st.BudgetAllocation[domain.ChannelGoogleAds])
	assert.Equal(t, 30.0, st.BudgetAllocation[domain.ChannelEmail])
}

func TestGenerateStrategyFallbackWithoutGenerator(t *testing.T) {
	svc, m := newService(t, nil)

	st := svc.GenerateStrategy(context.Background(), "g", "a", decimal.NewFromInt(100))
	assert.Equal(t, FallbackStrategy(), st)
	assert.Equal(t, "4 weeks", st.Timeline)
	assert.Equal(t, domain.Channels, st.Channels)
	assert.Len(t, st.TargetingSuggestions, 3)
	assert.Equal(t, 100.0, sumAllocation(st.BudgetAllocation))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GenerationFallbacksTotal.WithLabelValues("strategy")))
}

func TestGenerateStrategyFallbackOnError(t *testing.T) {
	gen := mocks.NewMockTextGenerator(t)
	gen.EXPECT().Generate(mock.Anything, mock.Anything).Return("", errors.New("quota exceeded")).Once()
	svc, _ := newService(t, gen)

	st := svc.GenerateStrategy(context.Background(), "g", "a", decimal.NewFromInt(100))
	assert.Equal(t, FallbackStrategy(), st)
}

func TestGenerateStrategyFallbackOnProse(t *testing.T) {
	gen := mocks.NewMockTextGenerator(t)
	gen.EXPECT().Generate(mock.Anything, mock.Anything).Return("I cannot help with {that request", nil).Once()
	svc, _ := newService(t, gen)

	st := svc.GenerateStrategy(context.Background(), "g", "a", decimal.NewFromInt(100))
	assert.Equal(t, FallbackStrategy(), st)
}

func TestGenerateStrategyNormalizes(t *testing.T) {
	gen := mocks.NewMockTextGenerator(t)
	gen.EXPECT().Generate(mock.Anything, mock.Anything).Return(`{
		"strategy": "",
		"channels": ["TikTok", "Meta Ads", "LinkedIn"],
		"budget_allocation": {"Meta Ads": 1, "LinkedIn Ads": 2, "TikTok": 5}
	}`, nil).Once()
	svc, _ := newService(t, gen)

	st := svc.GenerateStrategy(context.Background(), "g", "a", decimal.NewFromInt(100))
	assert.Equal(t, []domain.Channel{domain.ChannelMetaAds, domain.ChannelLinkedInAds}, st.Channels)
	assert.Equal(t, map[domain.Channel]float64{domain.ChannelMetaAds: 33, domain.ChannelLinkedInAds: 67}, st.BudgetAllocation)
	assert.Equal(t, "4 weeks", st.Timeline)
	assert.NotEmpty(t, st.Summary)
	assert.Len(t, st.TargetingSuggestions, 3)
}

func TestGenerateStrategyEmptyChannelsUseCanned(t *testing.T) {
	gen := mocks.NewMockTextGenerator(t)
	gen.EXPECT().Generate(mock.Anything, mock.Anything).Return(`{"strategy":"x","channels":["Snapchat"]}`, nil).Once()
	svc, _ := newService(t, gen)

	st := svc.GenerateStrategy(context.Background(), "g", "a", decimal.NewFromInt(100))
	assert.Equal(t, domain.Channels, st.Channels)
	assert.Equal(t, 100.0, sumAllocation(st.BudgetAllocation))
}

func TestRescaleAllocationEven(t *testing.T) {
	got := rescaleAllocation([]domain.Channel{domain.ChannelGoogleAds, domain.ChannelMetaAds, domain.ChannelEmail}, nil)
	assert.Equal(t, 100.0, sumAllocation(got))
	assert.Equal(t, 34.0, got[domain.ChannelGoogleAds])
	assert.Equal(t, 33.0, got[domain.ChannelMetaAds])
	assert.Equal(t, 33.0, got[domain.ChannelEmail])
}

func TestGenerateInsight(t *testing.T) {
	gen := mocks.NewMockTextGenerator(t)
	gen.EXPECT().
		Generate(mock.Anything, mock.MatchedBy(func(p string) bool { return strings.Contains(p, "Key performance trends") })).
		Return("  Shift budget to Meta Ads.  ", nil).Once()
	svc, _ := newService(t, gen)

	got := svc.GenerateInsight(context.Background(), domain.Summarize(nil))
	assert.Equal(t, "Shift budget to Meta Ads.", got)
}

func TestGenerateInsightFallback(t *testing.T) {
	svc, m := newService(t, nil)
	got := svc.GenerateInsight(context.Background(), domain.Summarize(nil))
	assert.Equal(t, fallbackInsight, got)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GenerationFallbacksTotal.WithLabelValues("insight")))
}

func TestGenerateAdCopy(t *testing.T) {
	gen := mocks.NewMockTextGenerator(t)
	gen.EXPECT().Generate(mock.Anything, mock.Anything).Return(`Sure! ["One", " ", "Two", "Three"]`, nil).Once()
	svc, _ := newService(t, gen)

	got := svc.GenerateAdCopy(context.Background(), "AutoMark", "marketers", "Meta Ads")
	assert.Equal(t, []string{"One", "Two", "Three"}, got)
}

func TestGenerateAdCopyFallback(t *testing.T) {
	gen := mocks.NewMockTextGenerator(t)
	gen.EXPECT().Generate(mock.Anything, mock.Anything).Return(`[1, 2, 3]`, nil).Once()
	svc, _ := newService(t, gen)

	got := svc.GenerateAdCopy(context.Background(), "AutoMark", "marketers", "Meta Ads")
	require.Len(t, got, 3)
	assert.Equal(t, "Discover AutoMark - Perfect for marketers!", got[0])
}

func TestGenerateAppliesTimeout(t *testing.T) {
	gen := mocks.NewMockTextGenerator(t)
	gen.EXPECT().Generate(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ string) (string, error) {
			_, ok := ctx.Deadline()
			assert.True(t, ok)
			<-ctx.Done()
			return "", ctx.Err()
		}).Once()
	svc := NewStrategyService(gen, 10*time.Millisecond, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	st := svc.GenerateStrategy(context.Background(), "g", "a", decimal.NewFromInt(1))
	assert.Equal(t, FallbackStrategy(), st)
}
