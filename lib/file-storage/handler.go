package filestorage

import (
	"context"
	"io"
)

type Provider interface {
	// UploadPhoto stores an applicant photo and returns its public URL
	UploadPhoto(ctx context.Context, fileName, contentType string, size int64, reader io.Reader) (url string, err error)
	MakeBucket(ctx context.Context) error
}

var Instance Provider
