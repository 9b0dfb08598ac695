package photolib

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/errors"
)

// BucketLibrary serves photos from the agency's S3 evidence bucket.
// Fetched photos land in a local cache directory so the multipart assembly
// can stream them like any other file.
type BucketLibrary struct {
	s3Client *s3.Client
	bucket   string
	prefix   string
	cacheDir string
}

// NewBucketLibrary creates an S3-backed library using the default AWS
// credential chain.
func NewBucketLibrary(ctx context.Context, bucket, region, prefix, cacheDir string) (*BucketLibrary, error) {
	slog.Info("photolib_s3_init", "bucket", bucket, "region", region, "prefix", prefix)

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		slog.Error("aws_config_load_failed", "error", err)
		return nil, errors.Wrap(err, "failed to load AWS config")
	}

	return &BucketLibrary{
		s3Client: s3.NewFromConfig(cfg),
		bucket:   bucket,
		prefix:   prefix,
		cacheDir: cacheDir,
	}, nil
}

// List returns the JPEG object names under the configured prefix.
func (l *BucketLibrary) List(ctx context.Context) ([]string, error) {
	slog.Info("photolib_list_start", "bucket", l.bucket, "prefix", l.prefix)

	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(l.bucket),
		Prefix: aws.String(l.prefix),
	}

	var names []string
	paginator := s3.NewListObjectsV2Paginator(l.s3Client, input)

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			slog.Error("photolib_list_failed", "prefix", l.prefix, "error", err)
			return nil, errors.Wrap(err, "failed to list evidence bucket")
		}

		for _, obj := range page.Contents {
			if obj.Key == nil {
				continue
			}
			name := strings.TrimPrefix(*obj.Key, l.prefix)
			name = strings.TrimPrefix(name, "/")
			if name != "" && isJPEG(name) {
				names = append(names, name)
			}
		}
	}

	slog.Info("photolib_list_complete", "prefix", l.prefix, "photo_count", len(names))
	return names, nil
}

// Fetch downloads one photo into the cache directory and returns its local
// path. The sha256 of the downloaded bytes is logged for traceability.
func (l *BucketLibrary) Fetch(ctx context.Context, name string) (string, error) {
	key := name
	if l.prefix != "" {
		key = strings.TrimSuffix(l.prefix, "/") + "/" + name
	}

	slog.Info("photolib_fetch_start", "bucket", l.bucket, "key", key)

	result, err := l.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		slog.Error("photolib_get_object_failed", "key", key, "error", err)
		return "", errors.Wrap(err, "failed to get photo from evidence bucket")
	}
	defer result.Body.Close()

	if err := os.MkdirAll(l.cacheDir, 0755); err != nil {
		return "", errors.Wrap(err, "failed to create media cache dir")
	}

	localPath := filepath.Join(l.cacheDir, filepath.Base(name))
	f, err := os.Create(localPath)
	if err != nil {
		slog.Error("photolib_cache_file_failed", "path", localPath, "error", err)
		return "", errors.Wrap(err, "failed to create cache file")
	}
	defer f.Close()

	hash := sha256.New()
	size, err := io.Copy(io.MultiWriter(f, hash), result.Body)
	if err != nil {
		slog.Error("photolib_download_failed", "key", key, "error", err)
		return "", errors.Wrap(err, "failed to download photo")
	}

	slog.Info("photolib_fetch_complete",
		"key", key,
		"local_path", localPath,
		"size_kb", size/1024,
		"sha256", hex.EncodeToString(hash.Sum(nil))[:16]+"...",
	)

	return localPath, nil
}
