package repositories

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/xid"
	"github.com/sbilibin2017/gw-lost-found/internal/apperrors"
	"github.com/sbilibin2017/gw-lost-found/internal/logger"
)

const (
	// MaxImageSize is the largest accepted upload.
	MaxImageSize = 5 << 20
	// ImageURLPrefix is the static path uploaded images are served under.
	ImageURLPrefix = "/uploads/"

	sniffLen = 3072
)

// imageTypes maps the accepted sniffed types to the extension files are stored
// with. SVG is left out since it can carry script.
var imageTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/bmp":  ".bmp",
}

// ImageFileRepository stores uploaded post images on local disk.
type ImageFileRepository struct {
	dir     string
	maxSize int64
}

// NewImageFileRepository creates the upload directory if needed.
func NewImageFileRepository(dir string) (*ImageFileRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ImageFileRepository{dir: dir, maxSize: MaxImageSize}, nil
}

// Dir returns the directory images are stored in.
func (r *ImageFileRepository) Dir() string {
	return r.dir
}

// Save stores src under a generated name and returns its public URL.
// The content is sniffed and the stored extension always follows the sniffed
// type; the client's file name is only logged.
func (r *ImageFileRepository) Save(ctx context.Context, originalName string, src io.Reader) (string, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(src, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", err
	}
	head = head[:n]

	mtype := mimetype.Detect(head)
	ext, ok := imageExt(mtype)
	if n == 0 || !ok {
		logger.Log.Warnw("rejected upload", "filename", originalName, "mimetype", mtype.String())
		return "", apperrors.Validation("Only image files are allowed!")
	}

	name := "file-" + xid.New().String() + ext
	path := filepath.Join(r.dir, name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", err
	}

	written, err := f.Write(head)
	if err == nil {
		var copied int64
		copied, err = io.Copy(f, io.LimitReader(src, r.maxSize-int64(written)+1))
		if err == nil && int64(written)+copied > r.maxSize {
			err = apperrors.Validation("File too large")
		}
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		logger.Log.Warnw("failed to store upload", "filename", originalName, "error", err)
		return "", err
	}

	logger.Log.Infow("stored upload", "filename", originalName, "path", path, "mimetype", mtype.String())
	return ImageURLPrefix + name, nil
}

// Delete removes the image behind a URL returned by Save. Missing files are ignored.
func (r *ImageFileRepository) Delete(ctx context.Context, imageURL string) error {
	if !strings.HasPrefix(imageURL, ImageURLPrefix) {
		return nil
	}
	name := filepath.Base(strings.TrimPrefix(imageURL, ImageURLPrefix))
	if name == "." || name == string(filepath.Separator) {
		return nil
	}

	err := os.Remove(filepath.Join(r.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	logger.Log.Infow("removed upload", "url", imageURL, "error", err)
	return err
}

// imageExt returns the stored extension for an accepted image type.
func imageExt(mtype *mimetype.MIME) (string, bool) {
	for m := mtype; m != nil; m = m.Parent() {
		if ext, ok := imageTypes[m.String()]; ok {
			return ext, true
		}
	}
	return "", false
}
