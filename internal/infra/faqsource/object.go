package faqsource

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/yanqian/hr-assistant/internal/domain/faq"
)

// ObjectSource reads the FAQ CSV from an S3-compatible bucket.
type ObjectSource struct {
	client *minio.Client
	bucket string
	key    string
}

// NewObjectSource constructs the source; endpoint may carry an http(s) scheme.
func NewObjectSource(endpoint, accessKey, secretKey, region, bucket, key string) (*ObjectSource, error) {
	useSSL := !strings.HasPrefix(strings.ToLower(endpoint), "http://")
	client, err := minio.New(sanitizeEndpoint(endpoint), &minio.Options{
		Creds:        credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure:       useSSL,
		Region:       region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, fmt.Errorf("init object store client: %w", err)
	}
	return &ObjectSource{client: client, bucket: bucket, key: key}, nil
}

// Name implements faq.EntrySource.
func (s *ObjectSource) Name() string {
	return fmt.Sprintf("object:%s/%s", s.bucket, s.key)
}

// Load implements faq.EntrySource.
func (s *ObjectSource) Load(ctx context.Context) ([]faq.Entry, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.key, minio.GetObjectOptions{})
	if err != nil {
		return nil, corpusError("get faq object", err)
	}
	defer obj.Close()
	entries, err := ParseCSV(obj)
	if err != nil {
		var errResp minio.ErrorResponse
		if errors.As(err, &errResp) {
			return nil, corpusError(fmt.Sprintf("read faq object (%s)", errResp.Code), err)
		}
		return nil, corpusError("parse faq object", err)
	}
	return entries, nil
}

func sanitizeEndpoint(endpoint string) string {
	trimmed := strings.TrimSpace(endpoint)
	trimmed = strings.TrimPrefix(trimmed, "https://")
	trimmed = strings.TrimPrefix(trimmed, "http://")
	return strings.TrimSuffix(trimmed, "/")
}

var _ faq.EntrySource = (*ObjectSource)(nil)
