package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/familyexpressec/courier-api/internal/config"
)

// ObjectStore es lo que los usecases esperan del almacenamiento de
// archivos: subir devolviendo URL pública y borrar por URL.
type ObjectStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, publicURL string) error
}

// B2Store habla con Backblaze B2 por su endpoint compatible con S3.
type B2Store struct {
	client   *s3.Client
	bucket   string
	endpoint string
}

func NewB2Store(cfg *config.Config) *B2Store {
	awsCfg := aws.Config{
		Region: cfg.B2Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.B2KeyID,
			cfg.B2AppKey,
			"",
		),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String("https://" + cfg.B2Endpoint)
		o.UsePathStyle = true
	})

	return &B2Store{
		client:   client,
		bucket:   cfg.B2Bucket,
		endpoint: cfg.B2Endpoint,
	}
}

func (s *B2Store) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	return fmt.Sprintf("https://%s.%s/%s", s.bucket, s.endpoint, key), nil
}

func (s *B2Store) Delete(ctx context.Context, publicURL string) error {
	key := keyFromURL(publicURL)
	if key == "" {
		return nil
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func keyFromURL(publicURL string) string {
	idx := strings.Index(publicURL, "://")
	if idx < 0 {
		return ""
	}
	rest := publicURL[idx+3:]

	slash := strings.Index(rest, "/")
	if slash < 0 || slash == len(rest)-1 {
		return ""
	}
	return rest[slash+1:]
}

var _ ObjectStore = (*B2Store)(nil)
