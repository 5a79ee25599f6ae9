package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// URLResolver turns a stored image reference into a displayable URL. A
// failure is scoped to that one reference and must not abort the others.
type URLResolver interface {
	Resolve(ctx context.Context, ref string) (string, error)
}

// S3ImageResolver resolves image references against an S3 bucket. References
// that are already absolute URLs pass through untouched; anything else is
// treated as an object key and presigned for reading.
type S3ImageResolver struct {
	Bucket    string
	ReadTTL   time.Duration
	UploadTTL time.Duration
	presigner *s3.PresignClient
}

func NewS3ImageResolver(client *s3.Client, bucket string, readTTL, uploadTTL time.Duration) *S3ImageResolver {
	return &S3ImageResolver{
		Bucket:    bucket,
		ReadTTL:   readTTL,
		UploadTTL: uploadTTL,
		presigner: s3.NewPresignClient(client),
	}
}

// Resolve implements URLResolver.
func (r *S3ImageResolver) Resolve(ctx context.Context, ref string) (string, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref, nil
	}

	params := &s3.GetObjectInput{
		Bucket: aws.String(r.Bucket),
		Key:    aws.String(ref),
	}
	presignedURL, err := r.presigner.PresignGetObject(ctx, params, s3.WithPresignExpires(r.ReadTTL))
	if err != nil {
		return "", fmt.Errorf("failed to presign read for '%s': %w", ref, err)
	}
	return presignedURL.URL, nil
}

// GenerateUploadURL generates a presigned URL for uploading a profile
// picture. The returned key is what the client stores in profile_pictures;
// the picker is expected to have compressed the image already.
func (r *S3ImageResolver) GenerateUploadURL(ctx context.Context, fileName, fileType string) (string, string, error) {
	key := "profile-pics/" + time.Now().Format("20060102150405") + "-" + fileName
	params := &s3.PutObjectInput{
		Bucket:      aws.String(r.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(fileType),
	}
	presignedURL, err := r.presigner.PresignPutObject(ctx, params, s3.WithPresignExpires(r.UploadTTL))
	if err != nil {
		return "", "", fmt.Errorf("failed to presign upload for '%s': %w", fileName, err)
	}
	return presignedURL.URL, key, nil
}

// InitializeS3Client initializes the S3 client
func InitializeS3Client(region string) *s3.Client {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	return s3.NewFromConfig(cfg)
}
