package filestorages

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	ErrFileNotFound      = errors.New("file not found")
	ErrFileAlreadyExists = errors.New("file already exists")
	ErrInvalidKey        = errors.New("invalid file key")
	ErrInvalidRootDir    = errors.New("invalid root directory")
)

type PutResult struct {
	FileKey string
}

type PutOptions struct {
	AllowOverwrite bool
}

//go:generate mockgen -source=file_storage.go -destination=./mocks/file_storage_mock.go -package=mocks
type FileStorage interface {
	Put(ctx context.Context, key string, r io.Reader, opts PutOptions) (*PutResult, error)
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	// List returns the keys of regular files under prefix, sorted. A missing prefix lists nothing.
	List(ctx context.Context, prefix string) ([]string, error)
}

type fileStorage struct {
	dir string
}

func NewFileStorage(rootDir string) (FileStorage, error) {
	if rootDir == "" {
		return nil, fmt.Errorf("%w: root directory cannot be empty", ErrInvalidRootDir)
	}

	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve absolute path: %w", ErrInvalidRootDir, err)
	}

	return &fileStorage{dir: absRootDir}, nil
}

func (s *fileStorage) Put(ctx context.Context, key string, r io.Reader, opts PutOptions) (*PutResult, error) {
	if err := s.validateKey(key); err != nil {
		return nil, err
	}

	finalPath := filepath.Join(s.dir, filepath.Clean(key))
	tmpPath, err := s.writeTemp(ctx, filepath.Dir(finalPath), r)
	if err != nil {
		return nil, err
	}
	defer func() { _ = os.Remove(tmpPath) }()

	if opts.AllowOverwrite {
		// Atomic replace (POSIX)
		if err := os.Rename(tmpPath, finalPath); err != nil {
			return nil, err
		}
		return &PutResult{FileKey: key}, nil
	}

	// Atomic publish-if-not-exists; final keeps the inode after the temp name goes
	if err := os.Link(tmpPath, finalPath); err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, ErrFileAlreadyExists
		}
		return nil, err
	}
	return &PutResult{FileKey: key}, nil
}

func (s *fileStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := s.validateKey(key); err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.dir, key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}

	return file, nil
}

func (s *fileStorage) List(ctx context.Context, prefix string) ([]string, error) {
	if err := s.validateKey(prefix); err != nil {
		return nil, err
	}

	root := filepath.Join(s.dir, filepath.Clean(prefix))
	var keys []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), ".tmp-") {
			return nil
		}
		rel, err := filepath.Rel(s.dir, path)
		if err != nil {
			return err
		}
		keys = append(keys, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	sort.Strings(keys)
	return keys, nil
}

// writeTemp copies r into a synced temp file inside dir, so no reader ever sees a partial file.
func (s *fileStorage) writeTemp(ctx context.Context, dir string, r io.Reader) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return "", err
	}
	tmpPath := tmp.Name()
	fail := func(err error) (string, error) {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return "", err
	}

	if _, err := io.Copy(tmp, r); err != nil {
		if ctx.Err() != nil {
			return fail(ctx.Err())
		}
		return fail(err)
	}
	if err := tmp.Sync(); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", err
	}
	return tmpPath, nil
}

func (s *fileStorage) validateKey(key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	if filepath.IsAbs(key) {
		return ErrInvalidKey
	}
	cleanPath := filepath.Clean(key)
	if cleanPath == ".." || cleanPath == "." {
		return ErrInvalidKey
	}
	if strings.HasPrefix(cleanPath, "..") {
		return ErrInvalidKey
	}
	// ensure the resolved path stays within the root directory
	rel, err := filepath.Rel(s.dir, filepath.Join(s.dir, cleanPath))
	if err != nil || strings.HasPrefix(rel, "..") {
		return ErrInvalidKey
	}
	return nil
}
