package filestorage

import (
	"context"
	"fmt"
	"io"
	"jobboard-backend/models"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const defaultPhotoExt = "jpg"

// ObjectStore is the part of the minio client the storage uses
type ObjectStore interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

type impl struct {
	s3client     ObjectStore
	bucketName   string
	publicUrl    string
	photoMaxSize int64
}

func NewInstance(s3client ObjectStore, bucketName, publicUrl string, photoMaxSize int64) {
	Instance = &impl{
		s3client:     s3client,
		bucketName:   bucketName,
		publicUrl:    strings.TrimRight(publicUrl, "/"),
		photoMaxSize: photoMaxSize,
	}
}

func (i impl) UploadPhoto(ctx context.Context, fileName, contentType string, size int64, reader io.Reader) (url string, err error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", models.NewValidationError("Invalid file type. Only images are allowed")
	}
	if size <= 0 {
		return "", models.NewValidationError("File is empty")
	}
	if i.photoMaxSize > 0 && size > i.photoMaxSize {
		return "", models.NewValidationError(fmt.Sprintf("File is too large. Maximum size is %d bytes", i.photoMaxSize))
	}
	objectName := photoObjectName(time.Now(), uuid.NewString(), photoExt(fileName, contentType))
	_, err = i.s3client.PutObject(ctx, i.bucketName, objectName, reader, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to upload photo")
	}
	log.WithField("object_name", objectName).Info("photo uploaded")
	return fmt.Sprintf("%s/%s/%s", i.publicUrl, i.bucketName, objectName), nil
}

func (i impl) MakeBucket(ctx context.Context) error {
	location := "us-east-1"
	exists, err := i.s3client.BucketExists(ctx, i.bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	err = i.s3client.MakeBucket(ctx, i.bucketName, minio.MakeBucketOptions{Region: location})
	if err != nil {
		return err
	}
	return nil
}

func photoObjectName(now time.Time, id, ext string) string {
	return fmt.Sprintf("photo-%d-%s.%s", now.UnixMilli(), id, ext)
}

// photoExt takes the extension of the uploaded file name, then the one known for the content type
func photoExt(fileName, contentType string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
	if ext != "" {
		return ext
	}
	exts, err := mime.ExtensionsByType(contentType)
	if err == nil && len(exts) != 0 {
		return strings.TrimPrefix(exts[0], ".")
	}
	return defaultPhotoExt
}
