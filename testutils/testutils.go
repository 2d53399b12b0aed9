package testutils

import (
	"bytes"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"library-backend/db"
	"library-backend/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB swaps the global db.DB for a sqlmock-backed connection and
// returns the mock plus a cleanup restoring the original.
func SetupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error creating the SQL mock connection: %s", err)
	}

	newLogger := logger.New(
		log.New(io.Discard, "", log.LstdFlags),
		logger.Config{
			LogLevel: logger.Silent,
		},
	)

	dialector := postgres.New(postgres.Config{
		Conn:       sqlDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		t.Fatalf("error opening the GORM connection: %s", err)
	}

	originalDB := db.DB
	db.DB = gormDB

	cleanup := func() {
		db.DB = originalDB
		sqlDB.Close()
	}

	return gormDB, mock, cleanup
}

func SetupTestRouter() *gin.Engine {
	r := gin.New()
	return r
}

func InitTestMain() {
	gin.SetMode(gin.TestMode)
}

// SetupTestStorage points the storage package at a disk store rooted in a
// temp dir.
func SetupTestStorage(t *testing.T) *storage.DiskStore {
	diskStore, err := storage.NewDiskStore(t.TempDir(), "http://localhost:8080/storage")
	if err != nil {
		t.Fatalf("error creating the test store: %s", err)
	}

	original := storage.Active()
	storage.Use(diskStore)
	t.Cleanup(func() {
		storage.Use(original)
	})

	return diskStore
}

// CreateImageFile builds a multipart.FileHeader the way an upload would
// deliver it.
func CreateImageFile(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		t.Fatalf("error creating the form file: %s", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("error writing the form file: %s", err)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("error parsing the multipart form: %s", err)
	}

	return req.MultipartForm.File["image"][0]
}
