package dataset

import (
	"EcommerceChatbot/pkg/s3"
	"context"
	"fmt"
	"path"
)

// S3Source reads <prefix>/<table>.csv objects from a bucket.
type S3Source struct {
	client s3.ItfS3
	prefix string
}

func NewS3Source(client s3.ItfS3, prefix string) *S3Source {
	return &S3Source{client: client, prefix: prefix}
}

func (s *S3Source) Name() string {
	return "s3"
}

func (s *S3Source) Key(table TableName) string {
	return path.Join(s.prefix, string(table)+".csv")
}

func (s *S3Source) Fetch(ctx context.Context, table TableName) (*Frame, error) {
	key := s.Key(table)

	exists, err := s.client.ObjectExists(ctx, key)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, key)
	}

	body, err := s.client.GetObject(ctx, key)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	return ReadCSV(ctx, body)
}
