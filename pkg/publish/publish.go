package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/df07/go-phong-raytracer/pkg/config"
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// UploadTimeout bounds a single upload
const UploadTimeout = 30 * time.Second

// ErrNotConfigured is returned when publishing is requested without a bucket
var ErrNotConfigured = errors.New("publish: S3 bucket not configured")

// Publisher uploads rendered images to S3-compatible object storage
type Publisher struct {
	client s3iface.S3API
	bucket string
	prefix string
	cdnURL string
	logger core.Logger
}

// New creates a publisher backed by an S3 session built from cfg. Static
// credentials are used when given; otherwise the SDK's default chain applies.
func New(cfg config.S3Config, logger core.Logger) (*Publisher, error) {
	if !cfg.Enabled() {
		return nil, ErrNotConfigured
	}

	s3Config := &aws.Config{
		Region: aws.String(cfg.Region),
	}
	if cfg.AccessKey != "" {
		s3Config.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}
	if cfg.Endpoint != "" {
		s3Config.Endpoint = aws.String(cfg.Endpoint)
		s3Config.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(s3Config)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}
	return NewWithClient(s3.New(sess), cfg, logger), nil
}

// NewWithClient creates a publisher using an existing S3 client
func NewWithClient(client s3iface.S3API, cfg config.S3Config, logger core.Logger) *Publisher {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Publisher{
		client: client,
		bucket: cfg.Bucket,
		prefix: strings.Trim(cfg.Prefix, "/"),
		cdnURL: strings.TrimRight(cfg.CDNURL, "/"),
		logger: logger,
	}
}

// Key returns the object key for a render: <prefix>/<scene>/<jobID><ext>
func (p *Publisher) Key(sceneName, jobID, ext string) string {
	return path.Join(p.prefix, sceneName, jobID+ext)
}

// URL returns the public location of key: under the CDN when one is
// configured, otherwise an s3:// URI
func (p *Publisher) URL(key string) string {
	if p.cdnURL != "" {
		return p.cdnURL + "/" + key
	}
	return fmt.Sprintf("s3://%s/%s", p.bucket, key)
}

// Upload stores data under key and returns its public URL
func (p *Publisher) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	size := int64(len(data))
	_, err := p.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	p.logger.Printf("Uploaded %s to S3 (%d bytes)\n", key, size)
	return p.URL(key), nil
}
