package oss

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"playtube.com/config"
	"playtube.com/pkg/constants"
)

func ensureBucket(ctx context.Context, bucketName string) error {
	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("check bucket error: %w", err)
	}
	if !exists {
		err = minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("create bucket error: %w", err)
		}
	}
	return nil
}

func putObject(ctx context.Context, bucketName, objectName string, file *multipart.FileHeader, contentType string) (string, error) {
	if err := ensureBucket(ctx, bucketName); err != nil {
		return "", err
	}
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	_, err = minioClient.PutObject(ctx, bucketName, objectName, src, file.Size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}
	return publicURL(bucketName, objectName), nil
}

// UploadVideo stores the uploaded video asset and returns its durable URL.
func UploadVideo(ctx context.Context, file *multipart.FileHeader) (string, error) {
	objectName := "video/" + uuid.NewString() + ext(file.Filename, ".mp4")
	return putObject(ctx, constants.VideoBucket, objectName, file, contentTypeOf(file, "video/mp4"))
}

// UploadImage stores an uploaded thumbnail and returns its durable URL.
func UploadImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	objectName := "thumbnail/" + uuid.NewString() + ext(file.Filename, ".jpg")
	return putObject(ctx, constants.PictureBucket, objectName, file, contentTypeOf(file, "image/jpeg"))
}

// DeleteVideoAsset removes a previously uploaded video asset by its URL.
func DeleteVideoAsset(ctx context.Context, url string) error {
	return removeByURL(ctx, constants.VideoBucket, url)
}

// DeleteImage removes a previously uploaded thumbnail by its URL.
func DeleteImage(ctx context.Context, url string) error {
	return removeByURL(ctx, constants.PictureBucket, url)
}

func removeByURL(ctx context.Context, bucketName, url string) error {
	objectName, err := objectFromURL(bucketName, url)
	if err != nil {
		return err
	}
	return minioClient.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{})
}

func publicURL(bucketName, objectName string) string {
	base := config.ConfigInfo.Minio.PublicBase
	if base == "" {
		scheme := "http"
		if config.ConfigInfo.Minio.UseSSL {
			scheme = "https"
		}
		base = fmt.Sprintf("%s://%s", scheme, config.ConfigInfo.Minio.Endpoint)
	}
	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(base, "/"), bucketName, objectName)
}

func objectFromURL(bucketName, url string) (string, error) {
	marker := "/" + bucketName + "/"
	idx := strings.Index(url, marker)
	if idx < 0 {
		return "", fmt.Errorf("url %q does not reference bucket %s", url, bucketName)
	}
	return url[idx+len(marker):], nil
}

func ext(filename, fallback string) string {
	if e := path.Ext(filename); e != "" {
		return e
	}
	return fallback
}

func contentTypeOf(file *multipart.FileHeader, fallback string) string {
	if ct := file.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return fallback
}
