package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"Reel-Food-Backend/domain"
	"Reel-Food-Backend/internal/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type AwsS3 struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	region  string
}

func NewAwsS3() *AwsS3 {
	region := utils.GetConfig("AWS_S3_REGION")

	cfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			utils.GetConfig("AWS_ACCESS_KEY"),
			utils.GetConfig("AWS_SECRET_KEY"),
			"",
		)),
	)
	if err != nil {
		log.Fatalf("error loading AWS config: %v", err)
	}

	client := s3.NewFromConfig(cfg)
	return &AwsS3{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  utils.GetConfig("AWS_S3_BUCKET"),
		region:  region,
	}
}

// AuthorizeUpload presigns a PUT to a fresh object key under reels/ so
// the client uploads video bytes straight to S3.
func (s *AwsS3) AuthorizeUpload(ctx context.Context) (domain.UploadCredentials, error) {
	objectKey := fmt.Sprintf("reels/%s", uuid.New().String())
	expiry := 30 * time.Minute

	presigned, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		return domain.UploadCredentials{}, err
	}

	return domain.UploadCredentials{
		Token:     objectKey,
		Expire:    time.Now().Add(expiry).Unix(),
		UploadURL: presigned.URL,
	}, nil
}

func (s *AwsS3) UploadFile(ctx context.Context, fileName string, file *multipart.FileHeader, dir string, allowed ...string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if len(allowed) > 0 {
		ok := false
		for _, a := range allowed {
			if ext == a {
				ok = true
				break
			}
		}
		if !ok {
			return "", domain.ErrUnsupportedVideo
		}
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	objectKey := fmt.Sprintf("%s/%s%s", dir, fileName, ext)
	contentType := file.Header.Get("Content-Type")

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey),
		Body:        src,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	return objectKey, nil
}

func (s *AwsS3) DeleteFile(ctx context.Context, objectKey string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	})
	return err
}

func (s *AwsS3) GetPublicLinkKey(objectKey string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, objectKey)
}

func (s *AwsS3) GetObjectKeyFromLink(link string) string {
	prefix := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", s.bucket, s.region)
	if !strings.HasPrefix(link, prefix) {
		return ""
	}
	return strings.TrimPrefix(link, prefix)
}
