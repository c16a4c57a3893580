package domain

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Channel identifies a marketing platform a campaign can run on.
type Channel string

const (
	ChannelGoogleAds   Channel = "Google Ads"
	ChannelMetaAds     Channel = "Meta Ads"
	ChannelLinkedInAds Channel = "LinkedIn Ads"
	ChannelEmail       Channel = "Email Marketing"
)

// Channels is the fixed enumeration of supported channels in display order.
var Channels = []Channel{ChannelGoogleAds, ChannelMetaAds, ChannelLinkedInAds, ChannelEmail}

// channelAliases maps lower-cased legacy and shorthand names onto channels.
var channelAliases = map[string]Channel{
	"google ads":      ChannelGoogleAds,
	"google":          ChannelGoogleAds,
	"meta ads":        ChannelMetaAds,
	"meta":            ChannelMetaAds,
	"facebook":        ChannelMetaAds,
	"linkedin ads":    ChannelLinkedInAds,
	"linkedin":        ChannelLinkedInAds,
	"email marketing": ChannelEmail,
	"email":           ChannelEmail,
}

// ParseChannel resolves a channel name. It accepts the canonical names as
// well as a few shorthands ("LinkedIn", "Email") used by older strategies.
func ParseChannel(name string) (Channel, error) {
	if c, ok := channelAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c, nil
	}
	return "", fmt.Errorf("unknown channel %q", name)
}

// ParseChannels resolves names into a channel set. Unknown names and names
// that resolve to an already listed channel ("Google Ads", "google") are
// rejected.
func ParseChannels(names []string) ([]Channel, error) {
	out := make([]Channel, 0, len(names))
	for _, name := range names {
		c, err := ParseChannel(name)
		if err != nil {
			return nil, err
		}
		if slices.Contains(out, c) {
			return nil, fmt.Errorf("duplicate channel %q", c)
		}
		out = append(out, c)
	}
	return out, nil
}

// UniqueChannels returns channels with repeats removed, keeping the first
// occurrence of each.
func UniqueChannels(channels []Channel) []Channel {
	out := make([]Channel, 0, len(channels))
	for _, c := range channels {
		if !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	return out
}

// IsAd reports whether the channel is a paid ad platform.
func (c Channel) IsAd() bool {
	return c == ChannelGoogleAds || c == ChannelMetaAds || c == ChannelLinkedInAds
}

func (c Channel) String() string { return string(c) }

// Strategy is the AI-generated plan attached to a campaign. BudgetAllocation
// holds per-channel percentages that should sum to roughly 100.
type Strategy struct {
	Summary              string              `json:"strategy"`
	Channels             []Channel           `json:"channels"`
	Timeline             string              `json:"timeline,omitempty"`
	BudgetAllocation     map[Channel]float64 `json:"budget_allocation"`
	TargetingSuggestions []string            `json:"targeting_suggestions"`
	EmailSubject         string              `json:"email_subject,omitempty"`
	EmailContent         string              `json:"email_content,omitempty"`
	EmailList            []string            `json:"email_list,omitempty"`
}

// UnmarshalJSON decodes a strategy leniently: channel names are normalized
// through ParseChannel and unknown ones are dropped, so generator output and
// rows written by older clients both decode.
func (s *Strategy) UnmarshalJSON(data []byte) error {
	var raw struct {
		Summary              string             `json:"strategy"`
		Channels             []string           `json:"channels"`
		Timeline             string             `json:"timeline"`
		BudgetAllocation     map[string]float64 `json:"budget_allocation"`
		TargetingSuggestions []string           `json:"targeting_suggestions"`
		EmailSubject         string             `json:"email_subject"`
		EmailContent         string             `json:"email_content"`
		EmailList            []string           `json:"email_list"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = Strategy{
		Summary:              raw.Summary,
		Timeline:             raw.Timeline,
		TargetingSuggestions: raw.TargetingSuggestions,
		EmailSubject:         raw.EmailSubject,
		EmailContent:         raw.EmailContent,
		EmailList:            raw.EmailList,
	}
	for _, name := range raw.Channels {
		if c, err := ParseChannel(name); err == nil && !slices.Contains(s.Channels, c) {
			s.Channels = append(s.Channels, c)
		}
	}
	if len(raw.BudgetAllocation) > 0 {
		s.BudgetAllocation = make(map[Channel]float64, len(raw.BudgetAllocation))
		for name, pct := range raw.BudgetAllocation {
			if c, err := ParseChannel(name); err == nil {
				s.BudgetAllocation[c] += pct
			}
		}
	}
	return nil
}
