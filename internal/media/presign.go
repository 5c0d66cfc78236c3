package media

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// PresignedUpload is everything a browser needs to POST a file straight
// to object storage, plus the key it will land under.
type PresignedUpload struct {
	URL       string            `json:"url"`
	Fields    map[string]string `json:"fields"`
	Key       string            `json:"key"`
	PublicURL string            `json:"publicUrl"`
}

// Presigner issues signed-POST upload targets against one bucket.
type Presigner struct {
	presign *s3.PresignClient
	bucket  string
	origin  string
}

// NewPresigner loads AWS config once at startup. Credentials come from the
// environment when set, otherwise from the default provider chain.
func NewPresigner(ctx context.Context, region, bucket, origin string) (*Presigner, error) {
	accessKey := os.Getenv("AWS_ACCESS_KEY_ID")
	secretKey := os.Getenv("AWS_SECRET_ACCESS_KEY")

	cfgOptions := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if accessKey != "" && secretKey != "" {
		cfgOptions = append(cfgOptions, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, cfgOptions...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return &Presigner{
		presign: s3.NewPresignClient(client),
		bucket:  bucket,
		origin:  origin,
	}, nil
}

// PresignUpload builds the object key and signs a 15-minute POST policy
// for it. The uuid fragment keeps same-named uploads from clobbering
// each other.
func (p *Presigner) PresignUpload(ctx context.Context, folder, fileName, contentType string) (*PresignedUpload, error) {
	key := path.Join(strings.Trim(folder, "/"), uuid.NewString()[:8]+"-"+SafeFileName(fileName))

	req, err := p.presign.PresignPostObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, func(opts *s3.PresignPostOptions) {
		opts.Expires = 15 * time.Minute
	})
	if err != nil {
		return nil, fmt.Errorf("presign %s: %w", key, err)
	}

	return &PresignedUpload{
		URL:       req.URL,
		Fields:    req.Values,
		Key:       key,
		PublicURL: ResolveURL(p.origin, key),
	}, nil
}
