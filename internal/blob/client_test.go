package blob

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeObjectStore is an in-memory stand-in for the S3 API, used to exercise
// the client without an object store available.
type fakeObjectStore struct {
	sync.Mutex
	buckets      map[string]map[string][]byte
	headBuckets  int
	createdNames []string
}

func newFakeObjectStore(buckets ...string) *fakeObjectStore {
	store := &fakeObjectStore{buckets: make(map[string]map[string][]byte)}
	for _, b := range buckets {
		store.buckets[b] = make(map[string][]byte)
	}
	return store
}

func (f *fakeObjectStore) bucket(name *string) (map[string][]byte, error) {
	b, ok := f.buckets[aws.ToString(name)]
	if !ok {
		return nil, &types.NoSuchBucket{Message: aws.String("no such bucket")}
	}
	return b, nil
}

func (f *fakeObjectStore) HeadBucket(_ context.Context, in *s3.HeadBucketInput, _ ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	f.Lock()
	defer f.Unlock()
	f.headBuckets++
	if _, ok := f.buckets[aws.ToString(in.Bucket)]; !ok {
		return nil, &types.NotFound{}
	}
	return &s3.HeadBucketOutput{}, nil
}

func (f *fakeObjectStore) CreateBucket(_ context.Context, in *s3.CreateBucketInput, _ ...func(*s3.Options)) (*s3.CreateBucketOutput, error) {
	f.Lock()
	defer f.Unlock()
	f.buckets[aws.ToString(in.Bucket)] = make(map[string][]byte)
	f.createdNames = append(f.createdNames, aws.ToString(in.Bucket))
	return &s3.CreateBucketOutput{}, nil
}

func (f *fakeObjectStore) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.Lock()
	defer f.Unlock()
	b, err := f.bucket(in.Bucket)
	if err != nil {
		return nil, err
	}
	content, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	b[aws.ToString(in.Key)] = content
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjectStore) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.Lock()
	defer f.Unlock()
	b, err := f.bucket(in.Bucket)
	if err != nil {
		return nil, err
	}
	content, ok := b[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(content)), ContentLength: aws.Int64(int64(len(content)))}, nil
}

func (f *fakeObjectStore) HeadObject(_ context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	f.Lock()
	defer f.Unlock()
	b, err := f.bucket(in.Bucket)
	if err != nil {
		return nil, err
	}
	if _, ok := b[aws.ToString(in.Key)]; !ok {
		return nil, &types.NotFound{}
	}
	return &s3.HeadObjectOutput{}, nil
}

func (f *fakeObjectStore) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.Lock()
	defer f.Unlock()
	b, err := f.bucket(in.Bucket)
	if err != nil {
		return nil, err
	}
	delete(b, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func (f *fakeObjectStore) ListObjectsV2(_ context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	f.Lock()
	defer f.Unlock()
	b, err := f.bucket(in.Bucket)
	if err != nil {
		return nil, err
	}
	out := &s3.ListObjectsV2Output{IsTruncated: aws.Bool(false)}
	for key, content := range b {
		out.Contents = append(out.Contents, types.Object{Key: aws.String(key), Size: aws.Int64(int64(len(content)))})
	}
	return out, nil
}

type fakePresigner struct{}

func (fakePresigner) PresignGetObject(_ context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	return presign("GET", aws.ToString(in.Bucket), aws.ToString(in.Key), optFns), nil
}

func (fakePresigner) PresignPutObject(_ context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	return presign("PUT", aws.ToString(in.Bucket), aws.ToString(in.Key), optFns), nil
}

func presign(method, bucket, key string, optFns []func(*s3.PresignOptions)) *v4.PresignedHTTPRequest {
	opts := s3.PresignOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &v4.PresignedHTTPRequest{
		Method: method,
		URL:    fmt.Sprintf("https://blobs.local/%s/%s?X-Amz-Expires=%d", bucket, key, int(opts.Expires.Seconds())),
	}
}

var staticCreds = credentials.NewStaticCredentialsProvider("key", "secret", "")

func TestEnsureContainer_CreatesMissingOnce(t *testing.T) {
	t.Parallel()
	store := newFakeObjectStore("videos")
	client := newClient(store, fakePresigner{}, staticCreds, "us-east-1")

	for i := 0; i < 3; i++ {
		require.NoError(t, client.EnsureContainer(context.Background(), "videos"))
		require.NoError(t, client.EnsureContainer(context.Background(), "thumbnails"))
	}

	assert.Equal(t, []string{"thumbnails"}, store.createdNames)
	assert.Equal(t, 2, store.headBuckets, "ensured containers must be memoised")
}

func TestUploadDownloadExistsDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	client := newClient(newFakeObjectStore("videos"), fakePresigner{}, staticCreds, "us-east-1")

	exists, err := client.Exists(ctx, "videos", "cat.mp4")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, client.Upload(ctx, "videos", "cat.mp4", bytes.NewReader([]byte("meow")), "video/mp4"))

	exists, err = client.Exists(ctx, "videos", "cat.mp4")
	require.NoError(t, err)
	assert.True(t, exists)

	stream, size, err := client.Download(ctx, "videos", "cat.mp4")
	require.NoError(t, err)
	defer stream.Close()
	content, err := io.ReadAll(stream)
	require.NoError(t, err)
	assert.Equal(t, "meow", string(content))
	assert.EqualValues(t, 4, size)

	objects, err := client.List(ctx, "videos")
	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.Equal(t, "cat.mp4", objects[0].Name)

	require.NoError(t, client.Delete(ctx, "videos", "cat.mp4"))
	require.NoError(t, client.Delete(ctx, "videos", "cat.mp4"), "deleting a missing blob is not an error")

	exists, err = client.Exists(ctx, "videos", "cat.mp4")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestIssueSignedURL(t *testing.T) {
	t.Parallel()
	client := newClient(newFakeObjectStore("videos"), fakePresigner{}, staticCreds, "us-east-1")

	url, err := client.IssueSignedURL(context.Background(), "videos", "cat.mp4", PermissionRead, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "https://blobs.local/videos/cat.mp4?X-Amz-Expires=86400", url)

	url, err = client.IssueSignedURL(context.Background(), "videos", "cat.mp4", PermissionWriteCreate, 30*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "https://blobs.local/videos/cat.mp4?X-Amz-Expires=1800", url)
}

func TestIssueSignedURL_FailsFastWithoutKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		summary string
		creds   aws.CredentialsProvider
	}{
		{"no provider", nil},
		{"anonymous", aws.AnonymousCredentials{}},
		{"provider error", aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
			return aws.Credentials{}, errors.New("no credentials in chain")
		})},
	}

	for _, test := range tests {
		test := test
		t.Run(test.summary, func(t *testing.T) {
			t.Parallel()
			client := newClient(newFakeObjectStore("videos"), fakePresigner{}, test.creds, "us-east-1")

			_, err := client.IssueSignedURL(context.Background(), "videos", "cat.mp4", PermissionRead, time.Hour)
			assert.ErrorIs(t, err, ErrSigningUnavailable)
		})
	}
}

func TestNormalizeBlobName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		stored   string
		expected string
	}{
		{"abc_cat.mp4", "abc_cat.mp4"},
		{"abc_cat.mp4?sig=xyz&se=2024", "abc_cat.mp4"},
		{"https://account.blob.core.windows.net/videos/abc_cat.mp4", "abc_cat.mp4"},
		{"https://blobs.local/videos/abc_cat.mp4?X-Amz-Signature=abc/def", "abc_cat.mp4"},
		{"", ""},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, NormalizeBlobName(test.stored), "normalising %q", test.stored)
	}
}

func TestConfigValidityDefaults(t *testing.T) {
	t.Parallel()

	config := Config{}
	assert.Equal(t, 30*time.Minute, config.UploadURLValidity())
	assert.Equal(t, 24*time.Hour, config.ReadURLValidity())

	config = Config{UploadURLValidityMinutes: 5, ReadURLValidityHours: 1}
	assert.Equal(t, 5*time.Minute, config.UploadURLValidity())
	assert.Equal(t, time.Hour, config.ReadURLValidity())
}
