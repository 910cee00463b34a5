package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/hbomb79/Videomania/pkg/logger"
)

var (
	// ErrSigningUnavailable is returned when a signed URL is requested but the
	// configured credentials are unable to produce a signature. This is a
	// configuration problem and retrying will not help.
	ErrSigningUnavailable = errors.New("blob credentials cannot produce signed URLs")

	log = logger.Get("Blob")
)

type Permission int

const (
	PermissionRead Permission = iota
	PermissionWriteCreate
)

func (p Permission) String() string {
	switch p {
	case PermissionRead:
		return "read"
	case PermissionWriteCreate:
		return "write+create"
	}

	return fmt.Sprintf("Permission(%d)", int(p))
}

// Object describes a single blob inside of a container.
type Object struct {
	Name         string
	Size         int64
	LastModified time.Time
}

type (
	objectAPI interface {
		s3.ListObjectsV2APIClient
		HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
		CreateBucket(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error)
		PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
		GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
		HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
		DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	}

	presignAPI interface {
		PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
		PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
	}

	// Client is a thin container-scoped wrapper around an S3 compatible
	// object store.
	Client struct {
		objects     objectAPI
		presigner   presignAPI
		credentials aws.CredentialsProvider
		region      string

		ensuredMutex sync.Mutex
		ensured      map[string]struct{}
	}
)

// New constructs a Client using the default AWS configuration chain, overridden
// by any explicit credentials, region and endpoint in the config provided.
func New(ctx context.Context, config Config) (*Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(config.Region)}
	if config.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(config.AccessKeyID, config.SecretAccessKey, ""),
		))
	}

	awsConfig, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load blob store configuration: %w", err)
	}

	s3Client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if config.Endpoint != "" {
			o.BaseEndpoint = aws.String(config.Endpoint)
		}
		o.UsePathStyle = config.UsePathStyle
	})

	return newClient(s3Client, s3.NewPresignClient(s3Client), awsConfig.Credentials, config.Region), nil
}

func newClient(objects objectAPI, presigner presignAPI, creds aws.CredentialsProvider, region string) *Client {
	return &Client{
		objects:     objects,
		presigner:   presigner,
		credentials: creds,
		region:      region,
		ensured:     make(map[string]struct{}),
	}
}

// EnsureContainer creates the container if it does not already exist. Containers which
// have been ensured successfully are remembered, and will not be checked again.
func (client *Client) EnsureContainer(ctx context.Context, name string) error {
	client.ensuredMutex.Lock()
	defer client.ensuredMutex.Unlock()
	if _, ok := client.ensured[name]; ok {
		return nil
	}

	_, err := client.objects.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(name)})
	if err != nil {
		if !isNotFound(err) {
			return fmt.Errorf("failed to check container %s: %w", name, err)
		}

		log.Emit(logger.NEW, "Creating container %s\n", name)
		input := &s3.CreateBucketInput{Bucket: aws.String(name)}
		if client.region != "" && client.region != "us-east-1" {
			input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
				LocationConstraint: types.BucketLocationConstraint(client.region),
			}
		}

		if _, err := client.objects.CreateBucket(ctx, input); err != nil {
			var owned *types.BucketAlreadyOwnedByYou
			if !errors.As(err, &owned) {
				return fmt.Errorf("failed to create container %s: %w", name, err)
			}
		}
	}

	client.ensured[name] = struct{}{}
	return nil
}

// Upload writes the content of the reader to the blob given, replacing any existing blob
// of the same name.
func (client *Client) Upload(ctx context.Context, container string, blobName string, body io.Reader, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(container),
		Key:    aws.String(blobName),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := client.objects.PutObject(ctx, input); err != nil {
		return fmt.Errorf("failed to upload blob %s to %s: %w", blobName, container, err)
	}

	log.Debugf("Uploaded blob %s/%s\n", container, blobName)
	return nil
}

// Download opens a stream to the content of the blob given, along with the size of
// the blob. The caller is responsible for closing the stream.
func (client *Client) Download(ctx context.Context, container string, blobName string) (io.ReadCloser, int64, error) {
	out, err := client.objects.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(container),
		Key:    aws.String(blobName),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to download blob %s from %s: %w", blobName, container, err)
	}

	return out.Body, aws.ToInt64(out.ContentLength), nil
}

func (client *Client) Exists(ctx context.Context, container string, blobName string) (bool, error) {
	_, err := client.objects.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(container),
		Key:    aws.String(blobName),
	})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}

		return false, fmt.Errorf("failed to check existence of blob %s in %s: %w", blobName, container, err)
	}

	return true, nil
}

// IssueSignedURL returns a time-limited URL which grants the holder the permission
// given against the blob. Read URLs are GET requests, write+create URLs are PUT
// requests.
func (client *Client) IssueSignedURL(ctx context.Context, container string, blobName string, permission Permission, validFor time.Duration) (string, error) {
	if err := client.ensureSigningCredentials(ctx); err != nil {
		return "", err
	}

	var (
		req *v4.PresignedHTTPRequest
		err error
	)
	expiry := s3.WithPresignExpires(validFor)
	switch permission {
	case PermissionRead:
		req, err = client.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(container),
			Key:    aws.String(blobName),
		}, expiry)
	case PermissionWriteCreate:
		req, err = client.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
			Bucket: aws.String(container),
			Key:    aws.String(blobName),
		}, expiry)
	default:
		return "", fmt.Errorf("unknown blob permission %s", permission)
	}
	if err != nil {
		return "", fmt.Errorf("failed to sign %s URL for blob %s in %s: %w", permission, blobName, container, err)
	}

	return req.URL, nil
}

// Delete removes the blob if it exists. Deleting a blob which does not exist
// is not an error.
func (client *Client) Delete(ctx context.Context, container string, blobName string) error {
	_, err := client.objects.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(container),
		Key:    aws.String(blobName),
	})
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to delete blob %s from %s: %w", blobName, container, err)
	}

	log.Emit(logger.REMOVE, "Deleted blob %s/%s\n", container, blobName)
	return nil
}

// List returns every blob in the container.
func (client *Client) List(ctx context.Context, container string) ([]Object, error) {
	paginator := s3.NewListObjectsV2Paginator(client.objects, &s3.ListObjectsV2Input{Bucket: aws.String(container)})

	objects := make([]Object, 0)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list container %s: %w", container, err)
		}

		for _, obj := range page.Contents {
			objects = append(objects, Object{
				Name:         aws.ToString(obj.Key),
				Size:         aws.ToInt64(obj.Size),
				LastModified: aws.ToTime(obj.LastModified),
			})
		}
	}

	return objects, nil
}

func (client *Client) ensureSigningCredentials(ctx context.Context) error {
	if client.credentials == nil {
		return ErrSigningUnavailable
	}

	creds, err := client.credentials.Retrieve(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSigningUnavailable, err)
	}
	if !creds.HasKeys() {
		return ErrSigningUnavailable
	}

	return nil
}

func isNotFound(err error) bool {
	var (
		notFound  *types.NotFound
		noSuchKey *types.NoSuchKey
		noBucket  *types.NoSuchBucket
	)
	if errors.As(err, &notFound) || errors.As(err, &noSuchKey) || errors.As(err, &noBucket) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey", "NoSuchBucket":
			return true
		}
	}

	return false
}
