// Package s3archive keeps an audit copy of every raw vendor payload in S3.
package s3archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/observability"
)

// ObjectPutter is the part of the S3 client the archive uses.
type ObjectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Store decorates a metrics store. Raw snapshots are written to the wrapped
// store first and then copied to the bucket. A failed copy is logged and
// counted but never fails the write.
type Store struct {
	port.MetricsStore
	client  ObjectPutter
	bucket  string
	prefix  string
	metrics *observability.Metrics
	logger  *slog.Logger
}

func New(next port.MetricsStore, client ObjectPutter, bucket, prefix string, metrics *observability.Metrics, logger *slog.Logger) *Store {
	return &Store{
		MetricsStore: next,
		client:       client,
		bucket:       bucket,
		prefix:       prefix,
		metrics:      metrics,
		logger:       logger,
	}
}

var _ port.MetricsStore = (*Store)(nil)

func (s *Store) AppendRaw(ctx context.Context, snap domain.RawMetricSnapshot) error {
	if err := s.MetricsStore.AppendRaw(ctx, snap); err != nil {
		return err
	}

	key := Key(s.prefix, snap)
	if err := s.put(ctx, key, snap); err != nil {
		s.metrics.ObserveArchiveError()
		s.logger.Warn("archive raw snapshot",
			slog.String("campaign_id", snap.CampaignID),
			slog.String("source", snap.Source),
			slog.String("key", key),
			slog.Any("err", err),
		)
	}
	return nil
}

func (s *Store) put(ctx context.Context, key string, snap domain.RawMetricSnapshot) error {
	body, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String("application/json"),
	})
	return err
}

// Key lays snapshots out by platform, campaign and day of the window start.
func Key(prefix string, snap domain.RawMetricSnapshot) string {
	start := snap.Window.Start.UTC()
	name := fmt.Sprintf("%s-%s-%s.json", start.Format("150405"), snap.Source, snap.ID)
	return path.Join(prefix, "raw", string(snap.Platform), snap.CampaignID, start.Format("2006/01/02"), name)
}

// NewClient builds an S3 client from the default AWS credential chain. A
// custom endpoint (MinIO, LocalStack) usually needs path-style addressing.
func NewClient(ctx context.Context, region, endpoint string, pathStyle bool) (*s3.Client, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.UsePathStyle = pathStyle
	}), nil
}
