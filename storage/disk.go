package storage

import (
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DiskStore keeps files under a local root that the router serves at
// /storage, mirroring a framework "public disk".
type DiskStore struct {
	root    string
	baseURL string
}

func NewDiskStore(root, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, err
	}
	if baseURL == "" {
		baseURL = "/storage"
	}
	return &DiskStore{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

func (s *DiskStore) Save(file *multipart.FileHeader, dir string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	rel := path.Join(dir, name)

	full := filepath.Join(s.root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return "", err
	}

	dst, err := os.Create(full)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(full)
		return "", err
	}
	return rel, nil
}

func (s *DiskStore) Delete(p string) error {
	return os.Remove(filepath.Join(s.root, filepath.FromSlash(p)))
}

func (s *DiskStore) Exists(p string) bool {
	_, err := os.Stat(filepath.Join(s.root, filepath.FromSlash(p)))
	return err == nil
}

func (s *DiskStore) URL(p string) string {
	return s.baseURL + "/" + p
}

// Root is the directory the router serves static files from.
func (s *DiskStore) Root() string {
	return s.root
}
