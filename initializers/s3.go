package initializers

import (
	"context"
	"jobboard-backend/config"
	filestorage "jobboard-backend/lib/file-storage"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
)

// InitS3 leaves photo upload disabled when no endpoint is configured
func InitS3(ctx context.Context) {
	if config.Conf.S3.Endpoint == "" {
		log.Warn("S3 endpoint is not configured, photo upload is disabled")
		return
	}
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("failed to init S3 client")
		return
	}

	filestorage.NewInstance(minioClient, config.Conf.S3.BucketName, config.Conf.S3.PublicUrl, config.Conf.S3.PhotoMaxSize)
	err = filestorage.Instance.MakeBucket(ctx)
	if err != nil {
		log.WithError(err).Error("S3 connection failed, bucket check returned an error")
		return
	}
	log.Info("S3 client initialized")
}
