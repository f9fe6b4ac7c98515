package storage

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// CloudStorageClient archives classified images to a Cloud Storage bucket.
// Archival is optional; the classification flow works without a bucket.
type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
}

func NewCloudStorageClient(ctx context.Context, bucketName, credentialsPath string) (*CloudStorageClient, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
	}, nil
}

// UploadImage writes the raw image bytes under classifications/ and returns
// the object's public URL.
func (c *CloudStorageClient) UploadImage(ctx context.Context, data []byte, contentType string) (string, error) {
	objectName := fmt.Sprintf("classifications/%s-%s", uuid.New().String(), time.Now().Format("20060102150405"))
	switch contentType {
	case "image/jpeg", "image/jpg":
		objectName += ".jpg"
	case "image/png":
		objectName += ".png"
	case "image/webp":
		objectName += ".webp"
	default:
		objectName += ".bin"
	}

	writer := c.client.Bucket(c.bucketName).Object(objectName).NewWriter(ctx)
	writer.ContentType = contentType

	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return "", fmt.Errorf("failed to write object: %v", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finish upload: %v", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, objectName), nil
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}
