package s3

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3API struct {
	s3iface.S3API
	objects map[string]string
	headErr error
}

func (f *fakeS3API) HeadObjectWithContext(_ aws.Context, in *s3.HeadObjectInput, _ ...request.Option) (*s3.HeadObjectOutput, error) {
	if f.headErr != nil {
		return nil, f.headErr
	}
	if _, ok := f.objects[aws.StringValue(in.Key)]; !ok {
		return nil, awserr.New("NotFound", "Not Found", nil)
	}
	return &s3.HeadObjectOutput{}, nil
}

func (f *fakeS3API) GetObjectWithContext(_ aws.Context, in *s3.GetObjectInput, _ ...request.Option) (*s3.GetObjectOutput, error) {
	body, ok := f.objects[aws.StringValue(in.Key)]
	if !ok {
		return nil, awserr.New(s3.ErrCodeNoSuchKey, "The specified key does not exist.", nil)
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func TestObjectExists(t *testing.T) {
	client := NewWithClient(&fakeS3API{objects: map[string]string{"data/orders.csv": "order_id\n1\n"}}, "bucket")

	ok, err := client.ObjectExists(context.Background(), "data/orders.csv")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = client.ObjectExists(context.Background(), "data/users.csv")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestObjectExists_Error(t *testing.T) {
	client := NewWithClient(&fakeS3API{headErr: errors.New("access denied")}, "bucket")

	_, err := client.ObjectExists(context.Background(), "k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "s3://bucket/k")
}

func TestGetObject(t *testing.T) {
	client := NewWithClient(&fakeS3API{objects: map[string]string{"k": "hello"}}, "bucket")

	body, err := client.GetObject(context.Background(), "k")
	require.NoError(t, err)
	defer body.Close()

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	_, err = client.GetObject(context.Background(), "missing")
	assert.Error(t, err)
}
