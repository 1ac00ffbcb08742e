package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"taskboard/internal/config"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	put     *s3.PutObjectInput
	body    string
	putErr  error
	headErr error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.put = in
	if in.Body != nil {
		b, _ := io.ReadAll(in.Body)
		f.body = string(b)
	}
	return &s3.PutObjectOutput{}, f.putErr
}

func (f *fakeS3) HeadBucket(context.Context, *s3.HeadBucketInput, ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	return &s3.HeadBucketOutput{}, f.headErr
}

func TestAvatarStore_Put(t *testing.T) {
	api := &fakeS3{}
	store := NewAvatarStore(api, config.S3Config{
		Endpoint:     "http://localhost:9000",
		Bucket:       "avatars",
		UsePathStyle: true,
	})
	userID := uuid.New()

	url, err := store.Put(context.Background(), userID, "image/png", strings.NewReader("png-bytes"), 9)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "http://localhost:9000/avatars/avatars/"+userID.String()+"/"))
	assert.True(t, strings.HasSuffix(url, ".png"))
	assert.Equal(t, "avatars", *api.put.Bucket)
	assert.Equal(t, "image/png", *api.put.ContentType)
	assert.Equal(t, "png-bytes", api.body)
}

func TestAvatarStore_PutError(t *testing.T) {
	store := NewAvatarStore(&fakeS3{putErr: errors.New("boom")}, config.S3Config{Bucket: "b", Region: "eu-west-1"})

	_, err := store.Put(context.Background(), uuid.New(), "image/jpeg", strings.NewReader("x"), 1)
	assert.ErrorContains(t, err, "boom")
}

func TestAvatarStore_EnsureBucketMissing(t *testing.T) {
	api := &fakeS3{headErr: &smithy.GenericAPIError{Code: "NotFound"}}
	store := NewAvatarStore(api, config.S3Config{Bucket: "missing"})

	err := store.EnsureBucket(context.Background())
	assert.ErrorIs(t, err, ErrBucketMissing)
}

func TestPublicBaseURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.S3Config
		want string
	}{
		{"explicit", config.S3Config{PublicURL: "https://cdn.example.com/", Bucket: "b"}, "https://cdn.example.com"},
		{"path style", config.S3Config{Endpoint: "http://minio:9000", Bucket: "b", UsePathStyle: true}, "http://minio:9000/b"},
		{"virtual host", config.S3Config{Endpoint: "https://s3.example.com", Bucket: "b"}, "https://b.s3.example.com"},
		{"aws", config.S3Config{Bucket: "b", Region: "us-east-1"}, "https://b.s3.us-east-1.amazonaws.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, publicBaseURL(tt.cfg))
		})
	}
}
