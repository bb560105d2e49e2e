package s3archive

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpilot/internal/adapter/memory"
	"adpilot/internal/core/domain"
)

type fakePutter struct {
	keys   []string
	bodies [][]byte
	err    error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.keys = append(f.keys, aws.ToString(in.Key))
	f.bodies = append(f.bodies, body)
	return &s3.PutObjectOutput{}, nil
}

var snapshot = domain.RawMetricSnapshot{
	ID:         "snap-1",
	Source:     "revealbot",
	SKUID:      "sku-1",
	CampaignID: "camp-1",
	Platform:   domain.PlatformMetaAds,
	AccountID:  "act-1",
	Window: domain.Window{
		Start: time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	},
	FetchedAt: time.Date(2026, 3, 10, 12, 5, 0, 0, time.UTC),
	Payload:   json.RawMessage(`{"spend":"12.50"}`),
}

func discardLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestAppendRawArchivesPayload(t *testing.T) {
	inner := memory.NewMetricsStore()
	putter := &fakePutter{}
	store := New(inner, putter, "audit", "adpilot", nil, discardLogger())

	require.NoError(t, store.AppendRaw(context.Background(), snapshot))

	assert.Len(t, inner.Raw("camp-1"), 1)
	require.Len(t, putter.keys, 1)
	assert.Equal(t, "adpilot/raw/meta_ads/camp-1/2026/03/10/110000-revealbot-snap-1.json", putter.keys[0])

	var archived domain.RawMetricSnapshot
	require.NoError(t, json.Unmarshal(putter.bodies[0], &archived))
	assert.JSONEq(t, `{"spend":"12.50"}`, string(archived.Payload))
}

func TestAppendRawSurvivesArchiveFailure(t *testing.T) {
	inner := memory.NewMetricsStore()
	store := New(inner, &fakePutter{err: errors.New("access denied")}, "audit", "", nil, discardLogger())

	require.NoError(t, store.AppendRaw(context.Background(), snapshot))
	assert.Len(t, inner.Raw("camp-1"), 1)
}

func TestAppendRawSkipsArchiveWhenStoreFails(t *testing.T) {
	putter := &fakePutter{}
	store := New(memory.NewMetricsStore(), putter, "audit", "", nil, discardLogger())

	bad := snapshot
	bad.CampaignID = ""
	assert.Error(t, store.AppendRaw(context.Background(), bad))
	assert.Empty(t, putter.keys)
}
