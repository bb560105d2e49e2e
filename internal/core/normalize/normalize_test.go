package normalize

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"adpilot/internal/core/domain"
)

var window = domain.Window{
	Start: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	End:   time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC),
}

func snapshot(source, payload string) domain.RawMetricSnapshot {
	return domain.RawMetricSnapshot{
		Source:     source,
		SKUID:      "sku-1",
		CampaignID: "camp-1",
		Platform:   domain.PlatformMetaAds,
		Window:     window,
		FetchedAt:  window.End,
		Payload:    json.RawMessage(payload),
	}
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestNormalizeVendorShapes(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		spend   float64
		imps    int64
		clicks  int64
		revenue float64
	}{
		{
			name:    "flat canonical",
			payload: `{"spend": 100.5, "impressions": 1000, "clicks": 10, "conversions": 2, "revenue": 201}`,
			spend:   100.5, imps: 1000, clicks: 10, revenue: 201,
		},
		{
			name:    "google micros nested",
			payload: `{"metrics": {"costMicros": "25000000", "impressions": "500", "clicks": "5", "conversionsValue": 0, "conversions_value": 75}}`,
			spend:   25, imps: 500, clicks: 5, revenue: 75,
		},
		{
			name:    "meta data rows as strings",
			payload: `{"data": [{"spend": "10.00", "impressions": "100", "clicks": "1", "purchase_value": "30"}, {"spend": "5", "impressions": "50", "clicks": "2"}]}`,
			spend:   15, imps: 150, clicks: 3, revenue: 30,
		},
		{
			name:    "linkedin elements",
			payload: `{"elements": [{"costInUsd": 12.5, "impressions": 400, "clicks": 8, "conversionValueInLocalCurrency": 50}]}`,
			spend:   12.5, imps: 400, clicks: 8, revenue: 50,
		},
		{
			name:    "aggregator totals",
			payload: `{"total_spend": 100, "total_impressions": 5000, "total_clicks": 50, "total_conversions": 4, "total_revenue": 320}`,
			spend:   100, imps: 5000, clicks: 50, revenue: 320,
		},
		{
			name:    "same figure under several names",
			payload: `{"spend": 100, "cost": 100, "impressions": 1000, "imps": 1000, "clicks": 10, "link_clicks": 10}`,
			spend:   100, imps: 1000, clicks: 10,
		},
		{
			name:    "zero canonical falls through to alias",
			payload: `{"spend": 0, "cost_micros": "7500000", "impressions": "0", "total_impressions": 300}`,
			spend:   7.5, imps: 300,
		},
		{
			name:    "rows with mixed names are summed",
			payload: `{"rows": [{"total_spend": "4", "impressions": 40}, {"cost": 6, "total_impressions": 60}]}`,
			spend:   10, imps: 100,
		},
		{
			name:    "empty metrics",
			payload: `{"campaign_id": "x"}`,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m, err := Normalize(snapshot("meta_ads", c.payload))
			if err != nil {
				t.Fatalf("Normalize error: %v", err)
			}
			if !near(m.Spend, c.spend) || m.Impressions != c.imps || m.Clicks != c.clicks || !near(m.Revenue, c.revenue) {
				t.Fatalf("got spend=%v imps=%d clicks=%d revenue=%v", m.Spend, m.Impressions, m.Clicks, m.Revenue)
			}
			if m.CampaignID != "camp-1" || m.SKUID != "sku-1" || m.Source != "meta_ads" {
				t.Fatalf("identity not carried over: %+v", m)
			}
			if m.DataQuality != SingleSourceQuality {
				t.Fatalf("quality = %v", m.DataQuality)
			}
		})
	}
}

func TestNormalizeDerivesRatios(t *testing.T) {
	m, err := Normalize(snapshot("google_ads", `{"spend": 50, "impressions": 2000, "clicks": 40, "revenue": 150}`))
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if !near(m.CTR, 0.02) || !near(m.CPC, 1.25) || !near(m.CPM, 25) || !near(m.ROAS, 3) {
		t.Fatalf("unexpected ratios ctr=%v cpc=%v cpm=%v roas=%v", m.CTR, m.CPC, m.CPM, m.ROAS)
	}
}

func TestNormalizeTakesOneValuePerField(t *testing.T) {
	m, err := Normalize(snapshot("revealbot", `{"spend": 100, "cost": 100, "impressions": 1000, "clicks": 10}`))
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if !near(m.Spend, 100) || !near(m.CPC, 10) {
		t.Fatalf("spend=%v cpc=%v, want 100 and 10", m.Spend, m.CPC)
	}
}

func TestNormalizeRejectsMalformedPayloads(t *testing.T) {
	for _, payload := range []string{
		`not json`,
		`null`,
		`{"spend": "ten"}`,
		`{"impressions": -5}`,
		`{"clicks": true}`,
		`{"data": ["row"]}`,
	} {
		_, err := Normalize(snapshot("adroll", payload))
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("payload %s: expected validation error, got %v", payload, err)
		}
	}
}

func TestMergeSumsAdditiveFields(t *testing.T) {
	a := domain.NormalizedMetric{Source: "revealbot", CampaignID: "camp-1", Window: window, FetchedAt: window.End, Spend: 100, Clicks: 10, Impressions: 1000}
	b := domain.NormalizedMetric{Source: "adroll", CampaignID: "camp-1", Window: window, FetchedAt: window.End, Spend: 200, Clicks: 20, Impressions: 2000}
	a.Derive()
	b.Derive()

	m, err := Merge([]domain.NormalizedMetric{a, b})
	if err != nil {
		t.Fatalf("Merge error: %v", err)
	}
	if m.Spend != 300 || m.Clicks != 30 || m.Impressions != 3000 {
		t.Fatalf("unexpected sums %+v", m)
	}
	if !near(m.CTR, 0.01) {
		t.Fatalf("ctr = %v, want 0.01", m.CTR)
	}
	if !near(m.CPC, 10) {
		t.Fatalf("cpc = %v, want 10", m.CPC)
	}
	if m.Source != "adroll+revealbot" {
		t.Fatalf("source = %q", m.Source)
	}
	// cv(spend) = cv(impressions) = 1/3
	if !near(m.DataQuality, 1-1.0/3) {
		t.Fatalf("quality = %v", m.DataQuality)
	}
}

func TestMergeKeepsNewestPerSource(t *testing.T) {
	old := domain.NormalizedMetric{Source: "adroll", CampaignID: "camp-1", Window: window, FetchedAt: window.End, Spend: 10}
	fresh := old
	fresh.FetchedAt = window.End.Add(time.Minute)
	fresh.Spend = 12

	m, err := Merge([]domain.NormalizedMetric{old, fresh})
	if err != nil {
		t.Fatalf("Merge error: %v", err)
	}
	if m.Spend != 12 || m.DataQuality != SingleSourceQuality {
		t.Fatalf("unexpected merge %+v", m)
	}
}

func TestMergeRejectsMixedWindows(t *testing.T) {
	a := domain.NormalizedMetric{Source: "a", CampaignID: "camp-1", Window: window}
	b := domain.NormalizedMetric{Source: "b", CampaignID: "camp-1", Window: domain.Window{Start: window.End, End: window.End.Add(time.Hour)}}
	if _, err := Merge([]domain.NormalizedMetric{a, b}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := Merge(nil); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for empty merge, got %v", err)
	}
}

func TestSumDeduplicatesWindows(t *testing.T) {
	next := domain.Window{Start: window.End, End: window.End.Add(time.Hour)}
	records := []domain.NormalizedMetric{
		{Source: "revealbot", CampaignID: "camp-1", Window: window, FetchedAt: window.End, Spend: 10, Revenue: 20, Impressions: 100},
		{Source: "meta_ads", CampaignID: "camp-1", Window: window, FetchedAt: window.End.Add(time.Minute), Spend: 11, Revenue: 33, Impressions: 110},
		{Source: "meta_ads", CampaignID: "camp-1", Window: next, FetchedAt: next.End, Spend: 5, Revenue: 5, Impressions: 50},
		{Source: "meta_ads", CampaignID: "camp-2", Window: window, FetchedAt: window.End, Spend: 4, Revenue: 2, Impressions: 40},
	}
	a := Sum(records)
	if a.DataPoints != 3 || !near(a.Spend, 20) || a.Impressions != 200 || !near(a.ROAS, 2) {
		t.Fatalf("unexpected aggregate %+v", a)
	}
}
