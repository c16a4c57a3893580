package channel

import (
	"log/slog"
	"net/http"

	"automark/internal/config/configs"
	"automark/internal/core/domain"
	"automark/internal/core/port"
)

// Registry maps the fixed channel enumeration to configured adapters.
type Registry struct {
	adapters map[domain.Channel]port.ChannelAdapter
}

// NewRegistry builds an adapter for every channel whose credentials are
// configured. Channels without credentials are absent and the orchestrator
// skips them.
func NewRegistry(cfg configs.Channels, hc *http.Client, logger *slog.Logger) *Registry {
	if hc == nil {
		hc = NewHTTPClient(0)
	}
	factories := map[domain.Channel]func() (port.ChannelAdapter, bool){
		domain.ChannelGoogleAds: func() (port.ChannelAdapter, bool) {
			return NewGoogleAds(cfg.GoogleAds, hc, cfg.UserAgent), cfg.GoogleAds.Enabled()
		},
		domain.ChannelMetaAds: func() (port.ChannelAdapter, bool) {
			return NewMetaAds(cfg.MetaAds, hc, cfg.UserAgent), cfg.MetaAds.Enabled()
		},
		domain.ChannelLinkedInAds: func() (port.ChannelAdapter, bool) {
			return NewLinkedInAds(cfg.LinkedInAds, hc, cfg.UserAgent), cfg.LinkedInAds.Enabled()
		},
		domain.ChannelEmail: func() (port.ChannelAdapter, bool) {
			return NewEmail(cfg.Email, hc, cfg.UserAgent), cfg.Email.Enabled()
		},
	}

	r := &Registry{adapters: make(map[domain.Channel]port.ChannelAdapter, len(factories))}
	for _, c := range domain.Channels {
		a, ok := factories[c]()
		if !ok {
			logger.Info("channel not configured", slog.String("channel", c.String()))
			continue
		}
		if cfg.SimulatePerformance {
			a = Simulate(a)
		}
		r.adapters[c] = a
	}
	return r
}

// NewStaticRegistry returns a registry serving the given adapters.
func NewStaticRegistry(adapters ...port.ChannelAdapter) *Registry {
	r := &Registry{adapters: make(map[domain.Channel]port.ChannelAdapter, len(adapters))}
	for _, a := range adapters {
		r.adapters[a.Channel()] = a
	}
	return r
}

func (r *Registry) Adapter(c domain.Channel) (port.ChannelAdapter, bool) {
	a, ok := r.adapters[c]
	return a, ok
}

// Configured lists the channels that have an adapter, in display order.
func (r *Registry) Configured() []domain.Channel {
	out := make([]domain.Channel, 0, len(r.adapters))
	for _, c := range domain.Channels {
		if _, ok := r.adapters[c]; ok {
			out = append(out, c)
		}
	}
	return out
}
