package channel

import (
	"context"
	"math/rand/v2"

	"github.com/shopspring/decimal"

	"automark/internal/core/domain"
	"automark/internal/core/port"
)

// SimulatedPerformance wraps an adapter and serves randomized metrics when
// no platform campaign id is tracked, so dashboards have data before a
// campaign ever reached a real platform. Calls with an id go to the
// wrapped adapter.
type SimulatedPerformance struct {
	port.ChannelAdapter
	next port.PerformanceFetcher
	// intn returns a value in [0, n).
	intn func(n int) int
}

// Simulate decorates adapter. The result keeps the pause capability of the
// wrapped adapter when it has one.
func Simulate(adapter port.ChannelAdapter) port.ChannelAdapter {
	s := &SimulatedPerformance{ChannelAdapter: adapter, intn: rand.IntN}
	if f, ok := adapter.(port.PerformanceFetcher); ok {
		s.next = f
	}
	if p, ok := adapter.(port.CampaignPauser); ok {
		return &simulatedPauser{SimulatedPerformance: s, pauser: p}
	}
	return s
}

func (s *SimulatedPerformance) GetCampaignPerformance(ctx context.Context, platformCampaignID string, r domain.DateRange) (domain.RawMetrics, error) {
	if platformCampaignID != "" && s.next != nil {
		return s.next.GetCampaignPerformance(ctx, platformCampaignID, r)
	}
	m := domain.RawMetrics{
		Impressions: int64(1000 + s.intn(10000)),
		Clicks:      int64(50 + s.intn(500)),
		Conversions: int64(5 + s.intn(50)),
		Spend:       decimal.NewFromInt(int64(100 + s.intn(500))),
	}
	if s.Channel() == domain.ChannelEmail {
		delivered := m.Impressions
		m.Email = &domain.EmailMetrics{
			Sent:      delivered + int64(s.intn(50)),
			Delivered: delivered,
			Opened:    delivered / 4,
			Clicked:   m.Clicks,
		}
	}
	return m, nil
}

type simulatedPauser struct {
	*SimulatedPerformance
	pauser port.CampaignPauser
}

func (s *simulatedPauser) PauseCampaign(ctx context.Context, platformCampaignID string) (domain.PlatformResult, error) {
	return s.pauser.PauseCampaign(ctx, platformCampaignID)
}
