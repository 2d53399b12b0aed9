package storage_test

import (
	"mime/multipart"
	"strings"
	"testing"

	"library-backend/storage"
	"library-backend/testutils"

	"github.com/stretchr/testify/assert"
)

func TestDiskStore_SaveDeleteRoundtrip(t *testing.T) {
	store, err := storage.NewDiskStore(t.TempDir(), "http://localhost:8080/storage")
	assert.NoError(t, err)

	file := testutils.CreateImageFile(t, "cover.PNG", []byte("png bytes"))

	path, err := store.Save(file, "books")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "books/"))
	assert.True(t, strings.HasSuffix(path, ".png"))

	assert.True(t, store.Exists(path))
	assert.Equal(t, "http://localhost:8080/storage/"+path, store.URL(path))

	assert.NoError(t, store.Delete(path))
	assert.False(t, store.Exists(path))
}

func TestDiskStore_DefaultBaseURL(t *testing.T) {
	store, err := storage.NewDiskStore(t.TempDir(), "")
	assert.NoError(t, err)

	assert.Equal(t, "/storage/books/x.png", store.URL("books/x.png"))
}

func TestDiskStore_ExistsOnMissingPath(t *testing.T) {
	store, err := storage.NewDiskStore(t.TempDir(), "")
	assert.NoError(t, err)

	assert.False(t, store.Exists("books/nope.png"))
}

func TestValidateImage(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		size     int64
		valid    bool
	}{
		{"jpeg ok", "cover.jpeg", 1024, true},
		{"jpg ok", "cover.jpg", 1024, true},
		{"png ok", "cover.png", 1024, true},
		{"uppercase ok", "COVER.PNG", 1024, true},
		{"exactly 2MB ok", "cover.png", 2 << 20, true},
		{"too large", "cover.png", 2<<20 + 1, false},
		{"gif rejected", "cover.gif", 1024, false},
		{"no extension", "cover", 1024, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := storage.ValidateImage(&multipart.FileHeader{
				Filename: tc.filename,
				Size:     tc.size,
			})
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
