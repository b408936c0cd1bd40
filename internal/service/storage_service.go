package service

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/config"
	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/util"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ArchiveProvider stores exported backup and report files somewhere a
// parent can retrieve them later.
type ArchiveProvider interface {
	Put(ctx context.Context, filename string, data []byte, contentType string) (string, error)
	GetURL(filename string) string
}

// LocalArchiveProvider keeps exports in a local directory.
type LocalArchiveProvider struct {
	Config *config.ArchiveConfig
}

func (p *LocalArchiveProvider) Put(ctx context.Context, filename string, data []byte, contentType string) (string, error) {
	dst := filepath.Join(p.Config.LocalPath, filename)
	dir := filepath.Dir(dst)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return "", err
	}
	return p.GetURL(filename), nil
}

func (p *LocalArchiveProvider) GetURL(filename string) string {
	return "/exports/" + filename
}

// MinioArchiveProvider uploads exports to a MinIO bucket.
type MinioArchiveProvider struct {
	Config *config.ArchiveConfig
	Client *minio.Client
}

func NewMinioArchiveProvider(cfg *config.ArchiveConfig) (*MinioArchiveProvider, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: false,
	})
	if err != nil {
		return nil, err
	}
	return &MinioArchiveProvider{Config: cfg, Client: client}, nil
}

func (p *MinioArchiveProvider) Put(ctx context.Context, filename string, data []byte, contentType string) (string, error) {
	_, err := p.Client.PutObject(ctx, p.Config.MinioBucket, filename,
		bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
			ContentType: contentType,
		})
	if err != nil {
		return "", err
	}
	return p.GetURL(filename), nil
}

func (p *MinioArchiveProvider) GetURL(filename string) string {
	return "/" + p.Config.MinioBucket + "/" + filename
}

// NewArchiveProvider picks the provider from config; local is the
// default.
func NewArchiveProvider(cfg *config.ArchiveConfig) (ArchiveProvider, error) {
	if cfg.Type == util.ArchiveMinio {
		return NewMinioArchiveProvider(cfg)
	}
	return &LocalArchiveProvider{Config: cfg}, nil
}
