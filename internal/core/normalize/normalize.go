// Package normalize maps vendor performance payloads onto the canonical
// NormalizedMetric and merges records reported by several sources.
package normalize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"adpilot/internal/core/domain"
)

// SingleSourceQuality is the data-quality score of a record backed by one
// source only.
const SingleSourceQuality = 0.8

type field int

const (
	fieldSpend field = iota
	fieldImpressions
	fieldClicks
	fieldConversions
	fieldRevenue
	fieldCount
)

type alias struct {
	key string
	div float64
}

// aliases lists the vendor names of each canonical field in precedence
// order. Within a row the first alias with a non-zero value wins. Keys are
// compared case-insensitively.
var aliases = [fieldCount][]alias{
	fieldSpend: {
		{"spend", 1}, {"total_spend", 1}, {"cost", 1}, {"amount_spent", 1},
		{"costinusd", 1}, {"costinlocalcurrency", 1},
		{"cost_micros", 1e6}, {"costmicros", 1e6},
	},
	fieldImpressions: {
		{"impressions", 1}, {"total_impressions", 1}, {"impression_count", 1}, {"imps", 1},
	},
	fieldClicks: {
		{"clicks", 1}, {"total_clicks", 1}, {"link_clicks", 1}, {"click_count", 1},
	},
	fieldConversions: {
		{"conversions", 1}, {"total_conversions", 1}, {"conversion_count", 1},
		{"purchases", 1}, {"externalwebsiteconversions", 1},
	},
	fieldRevenue: {
		{"revenue", 1}, {"conversion_value", 1}, {"conversions_value", 1},
		{"purchase_value", 1}, {"total_revenue", 1}, {"conversionvalueinlocalcurrency", 1},
	},
}

// nested objects whose fields are lifted to the row level
var nestedKeys = []string{"metrics", "stats", "statistics"}

// row collections summed into one record
var rowKeys = []string{"data", "rows", "results", "elements"}

// Normalize converts the payload of snap into a NormalizedMetric carrying
// the snapshot's identity. Numbers may be JSON numbers or numeric strings.
// Malformed payloads are reported as domain.ErrValidation.
func Normalize(snap domain.RawMetricSnapshot) (domain.NormalizedMetric, error) {
	out := domain.NormalizedMetric{
		Source:      snap.Source,
		SKUID:       snap.SKUID,
		CampaignID:  snap.CampaignID,
		Platform:    snap.Platform,
		AccountID:   snap.AccountID,
		Window:      snap.Window,
		FetchedAt:   snap.FetchedAt,
		DataQuality: SingleSourceQuality,
	}

	dec := json.NewDecoder(bytes.NewReader(snap.Payload))
	dec.UseNumber()
	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return out, fmt.Errorf("%w: %s payload: %v", domain.ErrValidation, snap.Source, err)
	}
	if doc == nil {
		return out, fmt.Errorf("%w: %s payload is empty", domain.ErrValidation, snap.Source)
	}

	rows, err := collectRows(doc)
	if err != nil {
		return out, fmt.Errorf("%w: %s payload: %v", domain.ErrValidation, snap.Source, err)
	}
	for _, row := range rows {
		if err := accumulate(&out, row); err != nil {
			return out, fmt.Errorf("%w: %s payload: %v", domain.ErrValidation, snap.Source, err)
		}
	}
	out.Derive()
	return out, nil
}

func collectRows(doc map[string]any) ([]map[string]any, error) {
	for _, k := range rowKeys {
		v, ok := doc[k]
		if !ok {
			continue
		}
		list, ok := v.([]any)
		if !ok {
			continue
		}
		rows := make([]map[string]any, 0, len(list))
		for i, item := range list {
			row, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%s[%d] is not an object", k, i)
			}
			rows = append(rows, flatten(row))
		}
		return rows, nil
	}
	return []map[string]any{flatten(doc)}, nil
}

func flatten(row map[string]any) map[string]any {
	out := make(map[string]any, len(row))
	for k, v := range row {
		out[k] = v
	}
	for _, k := range nestedKeys {
		if inner, ok := row[k].(map[string]any); ok {
			for ik, iv := range inner {
				out[ik] = iv
			}
		}
	}
	return out
}

// accumulate adds one row to m. Each canonical field takes a single value
// per row so vendors reporting the same figure under several names are not
// double counted.
func accumulate(m *domain.NormalizedMetric, row map[string]any) error {
	lower := make(map[string]any, len(row))
	for k, v := range row {
		lower[strings.ToLower(k)] = v
	}

	var vals [fieldCount]float64
	for f, list := range aliases {
		for _, a := range list {
			raw, ok := lower[a.key]
			if !ok {
				continue
			}
			v, err := number(raw)
			if err != nil {
				return fmt.Errorf("field %q: %w", a.key, err)
			}
			if v < 0 {
				return fmt.Errorf("field %q: negative value %v", a.key, v)
			}
			if v != 0 {
				vals[f] = v / a.div
				break
			}
		}
	}

	m.Spend += vals[fieldSpend]
	m.Impressions += int64(vals[fieldImpressions])
	m.Clicks += int64(vals[fieldClicks])
	m.Conversions += int64(vals[fieldConversions])
	m.Revenue += vals[fieldRevenue]
	return nil
}

func number(v any) (float64, error) {
	switch n := v.(type) {
	case nil:
		return 0, nil
	case json.Number:
		return n.Float64()
	case string:
		if strings.TrimSpace(n) == "" {
			return 0, nil
		}
		return strconv.ParseFloat(strings.TrimSpace(n), 64)
	case float64:
		return n, nil
	}
	return 0, fmt.Errorf("unexpected type %T", v)
}
