package domain

import (
	"encoding/json"
	"time"
)

// Window is a half-open time range [Start, End).
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Duration returns the length of the window.
func (w Window) Duration() time.Duration { return w.End.Sub(w.Start) }

// Valid reports whether the window has a positive length.
func (w Window) Valid() bool { return !w.Start.IsZero() && w.End.After(w.Start) }

// Contains reports whether inner lies entirely inside w.
func (w Window) Contains(inner Window) bool {
	return !inner.Start.Before(w.Start) && !inner.End.After(w.End)
}

// MetricScope selects metrics for one campaign or for every campaign of a
// SKU. Exactly one of the fields is expected to be set.
type MetricScope struct {
	CampaignID string
	SKUID      string
}

// RawMetricSnapshot is an immutable copy of a vendor performance payload as
// it was received.
type RawMetricSnapshot struct {
	ID         string          `json:"id"`
	Source     string          `json:"source"`
	SKUID      string          `json:"sku_id"`
	CampaignID string          `json:"campaign_id"`
	Platform   Platform        `json:"platform"`
	AccountID  string          `json:"account_id"`
	Window     Window          `json:"window"`
	FetchedAt  time.Time       `json:"fetched_at"`
	Payload    json.RawMessage `json:"payload"`
}

// NormalizedMetric is the canonical performance record shared by every
// vendor. Spend and Revenue are decimal currency units. Derived ratios are
// always recomputed from the additive fields.
type NormalizedMetric struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	SKUID       string    `json:"sku_id"`
	CampaignID  string    `json:"campaign_id"`
	Platform    Platform  `json:"platform"`
	AccountID   string    `json:"account_id"`
	Window      Window    `json:"window"`
	FetchedAt   time.Time `json:"fetched_at"`
	Spend       float64   `json:"spend"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	Conversions int64     `json:"conversions"`
	Revenue     float64   `json:"revenue"`
	CTR         float64   `json:"ctr"`
	CPC         float64   `json:"cpc"`
	CPM         float64   `json:"cpm"`
	ROAS        float64   `json:"roas"`
	DataQuality float64   `json:"data_quality"`
}

// Derive recomputes the ratio fields from the additive ones.
func (m *NormalizedMetric) Derive() {
	m.CTR, m.CPC, m.CPM, m.ROAS = ratios(m.Spend, m.Revenue, m.Impressions, m.Clicks)
}

// Aggregate is the sum of a set of normalized records with ratios derived
// from the sums.
type Aggregate struct {
	Spend       float64 `json:"spend"`
	Revenue     float64 `json:"revenue"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	CTR         float64 `json:"ctr"`
	CPC         float64 `json:"cpc"`
	CPM         float64 `json:"cpm"`
	ROAS        float64 `json:"roas"`
	DataPoints  int     `json:"data_points"`
}

// Add accumulates the additive fields of m. Call Derive once done.
func (a *Aggregate) Add(m NormalizedMetric) {
	a.Spend += m.Spend
	a.Revenue += m.Revenue
	a.Impressions += m.Impressions
	a.Clicks += m.Clicks
	a.Conversions += m.Conversions
	a.DataPoints++
}

// Derive recomputes the ratio fields from the sums.
func (a *Aggregate) Derive() {
	a.CTR, a.CPC, a.CPM, a.ROAS = ratios(a.Spend, a.Revenue, a.Impressions, a.Clicks)
}

func ratios(spend, revenue float64, impressions, clicks int64) (ctr, cpc, cpm, roas float64) {
	if impressions > 0 {
		ctr = float64(clicks) / float64(impressions)
		cpm = spend / float64(impressions) * 1000
	}
	if clicks > 0 {
		cpc = spend / float64(clicks)
	}
	if spend > 0 {
		roas = revenue / spend
	}
	return ctr, cpc, cpm, roas
}

// ToCents converts a decimal currency amount into integer units.
func ToCents(amount float64) int64 {
	if amount >= 0 {
		return int64(amount*100 + 0.5)
	}
	return int64(amount*100 - 0.5)
}

// FromCents converts integer units into a decimal currency amount.
func FromCents(cents int64) float64 { return float64(cents) / 100 }
