// Package images хранит изображения досок.
package images

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsdevblog/flashboard/internal/domain"
	"github.com/google/uuid"
)

// DiskUploader складывает файлы в dir, раздаются они по baseURL + ключ.
type DiskUploader struct {
	dir     string
	baseURL string
	now     func() time.Time
}

func NewDiskUploader(dir, baseURL string) *DiskUploader {
	return &DiskUploader{
		dir:     dir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		now:     time.Now,
	}
}

// Upload сохраняет файл под ключом yyyy/MM/dd/<uuid8>_<name> и возвращает его URL.
// Пустой файл (без Open) пропускается, URL будет пустым.
func (d *DiskUploader) Upload(ctx context.Context, file domain.File) (string, error) {
	if file.Open == nil {
		return "", nil
	}
	if err := ctx.Err(); err != nil {
		return "", err //nolint:wrapcheck
	}

	key := d.key(file.Name)
	if err := d.write(key, file); err != nil {
		return "", fmt.Errorf("upload `%s`: %w", file.Name, err)
	}
	return d.baseURL + "/" + key, nil
}

// UploadMany загружает файлы по порядку. При ошибке уже загруженные файлы удаляются.
func (d *DiskUploader) UploadMany(ctx context.Context, files []domain.File) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, file := range files {
		url, err := d.Upload(ctx, file)
		if err != nil {
			return nil, errors.Join(err, d.remove(urls))
		}
		if url != "" {
			urls = append(urls, url)
		}
	}
	return urls, nil
}

func (d *DiskUploader) key(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" {
		base = "image"
	}
	base = strings.ReplaceAll(base, " ", "_")
	return path.Join(d.now().Format("2006/01/02"), uuid.NewString()[:8]+"_"+base)
}

//nolint:nonamedreturns
func (d *DiskUploader) write(key string, file domain.File) (err error) {
	dst := filepath.Join(d.dir, filepath.FromSlash(key))
	if mkErr := os.MkdirAll(filepath.Dir(dst), 0o755); mkErr != nil { //nolint:mnd
		return fmt.Errorf("mkdir: %s", mkErr.Error())
	}

	src, openErr := file.Open()
	if openErr != nil {
		return fmt.Errorf("open source: %s", openErr.Error())
	}
	defer func() {
		err = errors.Join(err, src.Close())
	}()

	out, createErr := os.Create(dst)
	if createErr != nil {
		return fmt.Errorf("create: %s", createErr.Error())
	}
	defer func() {
		err = errors.Join(err, out.Close())
	}()

	if _, copyErr := io.Copy(out, src); copyErr != nil {
		return fmt.Errorf("copy: %s", copyErr.Error())
	}
	return nil
}

func (d *DiskUploader) remove(urls []string) error {
	var errs []error
	for _, url := range urls {
		key := strings.TrimPrefix(url, d.baseURL+"/")
		if err := os.Remove(filepath.Join(d.dir, filepath.FromSlash(key))); err != nil && !os.IsNotExist(err) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
