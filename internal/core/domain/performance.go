package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateLayout is the day-granularity format used for performance dates and
// platform date ranges.
const DateLayout = "2006-01-02"

// PerformanceRecord is one day of metrics for one channel of a campaign.
// Records are insert-only; several rows for the same day and channel may
// exist and are summed for display.
type PerformanceRecord struct {
	ID          int64           `json:"id,omitempty"`
	CampaignID  uuid.UUID       `json:"campaign_id"`
	Date        time.Time       `json:"date"`
	Channel     Channel         `json:"channel"`
	Impressions int64           `json:"impressions"`
	Clicks      int64           `json:"clicks"`
	Conversions int64           `json:"conversions"`
	Spend       decimal.Decimal `json:"spend"`
	CreatedAt   time.Time       `json:"created_at,omitempty"`
}

// DateRange is an inclusive range of days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// TrailingDays returns the range from n days before now through the day of
// now (UTC).
func TrailingDays(now time.Time, n int) DateRange {
	end := Day(now)
	return DateRange{Start: end.AddDate(0, 0, -n), End: end}
}

// StartString formats the range start as YYYY-MM-DD.
func (r DateRange) StartString() string { return r.Start.Format(DateLayout) }

// EndString formats the range end as YYYY-MM-DD.
func (r DateRange) EndString() string { return r.End.Format(DateLayout) }

// Day truncates t to midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// RawMetrics is what a channel adapter reports for a date range. Ad
// platforms fill the counters directly; the email channel reports
// engagement counters in Email instead.
type RawMetrics struct {
	Impressions int64
	Clicks      int64
	Conversions int64
	Spend       decimal.Decimal
	Email       *EmailMetrics
}

// EmailMetrics are engagement counters reported by email providers.
type EmailMetrics struct {
	Sent         int64 `json:"sent"`
	Delivered    int64 `json:"delivered"`
	Opened       int64 `json:"opened"`
	Clicked      int64 `json:"clicked"`
	Bounced      int64 `json:"bounced"`
	Unsubscribed int64 `json:"unsubscribed"`
}

// ToRecord normalizes metrics into a performance row. Email engagement maps
// delivered to impressions and clicked to clicks; email has no spend or
// tracked conversions. Negative values are clamped to zero.
func (m RawMetrics) ToRecord(campaignID uuid.UUID, channel Channel, date time.Time) PerformanceRecord {
	rec := PerformanceRecord{
		CampaignID:  campaignID,
		Date:        Day(date),
		Channel:     channel,
		Impressions: m.Impressions,
		Clicks:      m.Clicks,
		Conversions: m.Conversions,
		Spend:       m.Spend,
	}
	if m.Email != nil {
		rec.Impressions = m.Email.Delivered
		rec.Clicks = m.Email.Clicked
		rec.Conversions = 0
		rec.Spend = decimal.Zero
	}
	rec.Impressions = max(rec.Impressions, 0)
	rec.Clicks = max(rec.Clicks, 0)
	rec.Conversions = max(rec.Conversions, 0)
	if rec.Spend.IsNegative() {
		rec.Spend = decimal.Zero
	}
	return rec
}

// PerformanceTotals sums a set of records.
type PerformanceTotals struct {
	Impressions    int64           `json:"impressions"`
	Clicks         int64           `json:"clicks"`
	Conversions    int64           `json:"conversions"`
	Spend          decimal.Decimal `json:"spend"`
	CTR            float64         `json:"ctr"`
	CPC            decimal.Decimal `json:"cpc"`
	ConversionRate float64         `json:"conversion_rate"`
}

func (t *PerformanceTotals) add(r PerformanceRecord) {
	t.Impressions += r.Impressions
	t.Clicks += r.Clicks
	t.Conversions += r.Conversions
	t.Spend = t.Spend.Add(r.Spend)
}

func (t *PerformanceTotals) finish() {
	if t.Impressions > 0 {
		t.CTR = float64(t.Clicks) / float64(t.Impressions) * 100
	}
	if t.Clicks > 0 {
		t.CPC = t.Spend.Div(decimal.NewFromInt(t.Clicks)).Round(2)
		t.ConversionRate = float64(t.Conversions) / float64(t.Clicks) * 100
	}
}

// ChannelDayTotals is the sum of all records for one channel on one day.
type ChannelDayTotals struct {
	Date    time.Time `json:"date"`
	Channel Channel   `json:"channel"`
	PerformanceTotals
}

// PerformanceSummary aggregates performance rows for display and insight
// generation.
type PerformanceSummary struct {
	Totals    PerformanceTotals             `json:"totals"`
	ByChannel map[Channel]PerformanceTotals `json:"by_channel"`
	Daily     []ChannelDayTotals            `json:"daily"`
}

// Summarize folds records into totals, per-channel totals and per
// channel/day sums. Daily rows are ordered by date then channel.
func Summarize(records []PerformanceRecord) PerformanceSummary {
	type key struct {
		day     time.Time
		channel Channel
	}
	summary := PerformanceSummary{ByChannel: make(map[Channel]PerformanceTotals)}
	daily := make(map[key]*ChannelDayTotals)
	for _, r := range records {
		summary.Totals.add(r)

		ch := summary.ByChannel[r.Channel]
		ch.add(r)
		summary.ByChannel[r.Channel] = ch

		k := key{day: Day(r.Date), channel: r.Channel}
		d, ok := daily[k]
		if !ok {
			d = &ChannelDayTotals{Date: k.day, Channel: k.channel}
			daily[k] = d
		}
		d.add(r)
	}

	summary.Totals.finish()
	for c, t := range summary.ByChannel {
		t.finish()
		summary.ByChannel[c] = t
	}
	summary.Daily = make([]ChannelDayTotals, 0, len(daily))
	for _, d := range daily {
		d.finish()
		summary.Daily = append(summary.Daily, *d)
	}
	sort.Slice(summary.Daily, func(i, j int) bool {
		if !summary.Daily[i].Date.Equal(summary.Daily[j].Date) {
			return summary.Daily[i].Date.Before(summary.Daily[j].Date)
		}
		return summary.Daily[i].Channel < summary.Daily[j].Channel
	})
	return summary
}
