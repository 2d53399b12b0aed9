package storage

import (
	"fmt"
	"mime/multipart"
	"os"
	"strings"

	"library-backend/utils"
)

// Store is the public file store that holds book cover images. Stored paths
// are relative ("books/<name>.png"); URL derives the public address of a
// stored path.
type Store interface {
	Save(file *multipart.FileHeader, dir string) (string, error)
	Delete(path string) error
	Exists(path string) bool
	URL(path string) string
}

var store Store

// Init selects the storage driver from STORAGE_DRIVER. Local disk is the
// default.
func Init() error {
	driver := os.Getenv("STORAGE_DRIVER")
	switch driver {
	case "", "local":
		root := os.Getenv("STORAGE_PATH")
		if root == "" {
			root = "storage/public"
		}
		diskStore, err := NewDiskStore(root, os.Getenv("STORAGE_BASE_URL"))
		if err != nil {
			return err
		}
		store = diskStore
	case "cloudinary":
		cloudinaryStore, err := NewCloudinaryStore()
		if err != nil {
			return err
		}
		store = cloudinaryStore
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", driver)
	}
	return nil
}

// Use swaps the active store. Tests rely on it.
func Use(s Store) {
	store = s
}

// Active returns the configured store, nil when Init has not run or failed.
func Active() Store {
	return store
}

func Save(file *multipart.FileHeader, dir string) (string, error) {
	if store == nil {
		return "", fmt.Errorf("file store is not initialized")
	}
	return store.Save(file, dir)
}

func Delete(path string) error {
	if store == nil {
		return fmt.Errorf("file store is not initialized")
	}
	return store.Delete(path)
}

func Exists(path string) bool {
	return store != nil && store.Exists(path)
}

func URL(path string) string {
	if store == nil {
		return path
	}
	return store.URL(path)
}

// 2MB, the upload cap for cover images.
const maxImageSize = 2 << 20

// ValidateImage enforces the cover upload contract: jpeg/jpg/png, at most 2MB.
func ValidateImage(file *multipart.FileHeader) error {
	name := strings.ToLower(file.Filename)
	validType := strings.HasSuffix(name, ".jpg") ||
		strings.HasSuffix(name, ".jpeg") ||
		strings.HasSuffix(name, ".png")
	if !validType {
		return utils.FieldError("image", "format harus jpeg, png, atau jpg")
	}
	if file.Size > maxImageSize {
		return utils.FieldError("image", "ukuran maksimal 2MB")
	}
	return nil
}
