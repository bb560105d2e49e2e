package normalize

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"adpilot/internal/core/domain"
)

// Merge combines the records several sources reported for the same
// campaign and window. Additive fields are summed and ratios are derived
// from the sums; ratios of the inputs are never averaged. When one source
// reported more than once its newest record is used.
func Merge(records []domain.NormalizedMetric) (domain.NormalizedMetric, error) {
	if len(records) == 0 {
		return domain.NormalizedMetric{}, fmt.Errorf("%w: nothing to merge", domain.ErrValidation)
	}
	first := records[0]
	latest := make(map[string]domain.NormalizedMetric, len(records))
	for _, r := range records {
		if r.CampaignID != first.CampaignID || !r.Window.Start.Equal(first.Window.Start) || !r.Window.End.Equal(first.Window.End) {
			return domain.NormalizedMetric{}, fmt.Errorf("%w: records for different campaigns or windows", domain.ErrValidation)
		}
		if prev, ok := latest[r.Source]; !ok || r.FetchedAt.After(prev.FetchedAt) {
			latest[r.Source] = r
		}
	}

	sources := make([]string, 0, len(latest))
	for s := range latest {
		sources = append(sources, s)
	}
	slices.Sort(sources)

	out := domain.NormalizedMetric{
		SKUID:      first.SKUID,
		CampaignID: first.CampaignID,
		Platform:   first.Platform,
		AccountID:  first.AccountID,
		Window:     first.Window,
		Source:     strings.Join(sources, "+"),
	}
	spends := make([]float64, 0, len(sources))
	imps := make([]float64, 0, len(sources))
	for _, s := range sources {
		r := latest[s]
		out.Spend += r.Spend
		out.Impressions += r.Impressions
		out.Clicks += r.Clicks
		out.Conversions += r.Conversions
		out.Revenue += r.Revenue
		if r.FetchedAt.After(out.FetchedAt) {
			out.FetchedAt = r.FetchedAt
		}
		spends = append(spends, r.Spend)
		imps = append(imps, float64(r.Impressions))
	}
	out.Derive()
	out.DataQuality = Quality(spends, imps)
	return out, nil
}

// Quality scores the agreement between sources in [0, 1].
func Quality(spends, impressions []float64) float64 {
	if len(spends) < 2 {
		return SingleSourceQuality
	}
	return math.Max(0, 1-(cv(spends)+cv(impressions))/2)
}

func cv(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean := sum / float64(len(xs))
	if mean == 0 {
		return 0
	}
	var sq float64
	for _, x := range xs {
		sq += (x - mean) * (x - mean)
	}
	return math.Sqrt(sq/float64(len(xs))) / math.Abs(mean)
}

type windowKey struct {
	campaign   string
	start, end int64
}

// Dedupe keeps the newest record per campaign and window. The result keeps
// the input order of the surviving records.
func Dedupe(records []domain.NormalizedMetric) []domain.NormalizedMetric {
	newest := make(map[windowKey]int, len(records))
	for i, r := range records {
		k := windowKey{r.CampaignID, r.Window.Start.UnixNano(), r.Window.End.UnixNano()}
		if j, ok := newest[k]; !ok || r.FetchedAt.After(records[j].FetchedAt) {
			newest[k] = i
		}
	}
	out := make([]domain.NormalizedMetric, 0, len(newest))
	for i, r := range records {
		k := windowKey{r.CampaignID, r.Window.Start.UnixNano(), r.Window.End.UnixNano()}
		if newest[k] == i {
			out = append(out, r)
		}
	}
	return out
}

// Sum aggregates records after de-duplication.
func Sum(records []domain.NormalizedMetric) domain.Aggregate {
	var a domain.Aggregate
	for _, r := range Dedupe(records) {
		a.Add(r)
	}
	a.Derive()
	return a
}
