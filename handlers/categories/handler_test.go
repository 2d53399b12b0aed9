package categories

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"library-backend/models"
	"library-backend/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

type categoryResponse struct {
	Data    models.Category   `json:"data"`
	Message string            `json:"message"`
	Error   map[string]string `json:"error"`
}

func TestCreateCategory_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE name = \$1 ORDER BY "categories"\."id" LIMIT \$2`).
		WithArgs("Fiksi", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "categories" (.+) RETURNING "id"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("category-uuid"))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/categories", CreateCategory)

	jsonData, _ := json.Marshal(map[string]string{"name": "Fiksi"})
	req, _ := http.NewRequest(http.MethodPost, "/categories", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var body categoryResponse
	json.Unmarshal(resp.Body.Bytes(), &body)
	assert.Equal(t, "Fiksi", body.Data.Name)
	assert.Equal(t, "category-uuid", body.Data.ID)
	assert.Equal(t, "Berhasil membuat kategori", body.Message)
}

func TestCreateCategory_DuplicateName(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE name = \$1 ORDER BY "categories"\."id" LIMIT \$2`).
		WithArgs("Fiksi", 1).
		WillReturnRows(mock.NewRows([]string{"id", "name"}).AddRow("existing-uuid", "Fiksi"))

	r := testutils.SetupTestRouter()
	r.POST("/categories", CreateCategory)

	jsonData, _ := json.Marshal(map[string]string{"name": "Fiksi"})
	req, _ := http.NewRequest(http.MethodPost, "/categories", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)

	var body categoryResponse
	json.Unmarshal(resp.Body.Bytes(), &body)
	assert.Contains(t, body.Error, "name")
}

func TestCreateCategory_MissingName(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/categories", CreateCategory)

	req, _ := http.NewRequest(http.MethodPost, "/categories", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)

	var body categoryResponse
	json.Unmarshal(resp.Body.Bytes(), &body)
	assert.Equal(t, "wajib diisi", body.Error["name"])
}

func TestGetAllCategories_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "categories" ORDER BY name ASC`).
		WillReturnRows(mock.NewRows([]string{"id", "name"}).
			AddRow("uuid-1", "Fiksi").
			AddRow("uuid-2", "Teknologi"))

	r := testutils.SetupTestRouter()
	r.GET("/categories", GetAllCategories)

	req, _ := http.NewRequest(http.MethodGet, "/categories", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Data    []models.Category `json:"data"`
		Message string            `json:"message"`
	}
	json.Unmarshal(resp.Body.Bytes(), &body)
	assert.Len(t, body.Data, 2)
	assert.Equal(t, "Berhasil menampilkan kategori", body.Message)
}

func TestGetCategoryByID_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE id = \$1 ORDER BY "categories"\."id" LIMIT \$2`).
		WithArgs("uuid-1", 1).
		WillReturnRows(mock.NewRows([]string{"id", "name"}).AddRow("uuid-1", "Fiksi"))

	mock.ExpectQuery(`SELECT \* FROM "books" WHERE "books"\."category_id" = \$1`).
		WithArgs("uuid-1").
		WillReturnRows(mock.NewRows([]string{"id", "judul", "penulis", "tahun_terbit", "category_id"}).
			AddRow("book-uuid", "Dune", "Frank Herbert", 1965, "uuid-1"))

	r := testutils.SetupTestRouter()
	r.GET("/categories/:id", GetCategoryByID)

	req, _ := http.NewRequest(http.MethodGet, "/categories/uuid-1", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var body categoryResponse
	json.Unmarshal(resp.Body.Bytes(), &body)
	assert.Equal(t, "Fiksi", body.Data.Name)
	assert.Len(t, body.Data.Books, 1)
	assert.Equal(t, "Dune", body.Data.Books[0].Judul)
}

func TestGetCategoryByID_NotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE id = \$1 ORDER BY "categories"\."id" LIMIT \$2`).
		WithArgs("missing-uuid", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.GET("/categories/:id", GetCategoryByID)

	req, _ := http.NewRequest(http.MethodGet, "/categories/missing-uuid", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)

	var body categoryResponse
	json.Unmarshal(resp.Body.Bytes(), &body)
	assert.Equal(t, "Kategori Tidak Ditemukan", body.Message)
}

func TestUpdateCategory_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE id = \$1 ORDER BY "categories"\."id" LIMIT \$2`).
		WithArgs("uuid-1", 1).
		WillReturnRows(mock.NewRows([]string{"id", "name"}).AddRow("uuid-1", "Fiksi"))

	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE name = \$1 AND id <> \$2 ORDER BY "categories"\."id" LIMIT \$3`).
		WithArgs("Sastra", "uuid-1", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "categories" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.PUT("/categories/:id", UpdateCategory)

	jsonData, _ := json.Marshal(map[string]string{"name": "Sastra"})
	req, _ := http.NewRequest(http.MethodPut, "/categories/uuid-1", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var body categoryResponse
	json.Unmarshal(resp.Body.Bytes(), &body)
	assert.Equal(t, "Sastra", body.Data.Name)
	assert.Equal(t, "Kategori berhasil diperbarui", body.Message)
}

func TestDeleteCategory_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE id = \$1 ORDER BY "categories"\."id" LIMIT \$2`).
		WithArgs("uuid-1", 1).
		WillReturnRows(mock.NewRows([]string{"id", "name"}).AddRow("uuid-1", "Fiksi"))

	mock.ExpectQuery(`SELECT count\(\*\) FROM "books" WHERE category_id = \$1`).
		WithArgs("uuid-1").
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "categories" WHERE "categories"\."id" = \$1`).
		WithArgs("uuid-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.DELETE("/categories/:id", DeleteCategory)

	req, _ := http.NewRequest(http.MethodDelete, "/categories/uuid-1", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNoContent, resp.Code)
	assert.Empty(t, resp.Body.Bytes())
}

func TestDeleteCategory_StillHasBooks(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE id = \$1 ORDER BY "categories"\."id" LIMIT \$2`).
		WithArgs("uuid-1", 1).
		WillReturnRows(mock.NewRows([]string{"id", "name"}).AddRow("uuid-1", "Fiksi"))

	mock.ExpectQuery(`SELECT count\(\*\) FROM "books" WHERE category_id = \$1`).
		WithArgs("uuid-1").
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(3))

	r := testutils.SetupTestRouter()
	r.DELETE("/categories/:id", DeleteCategory)

	req, _ := http.NewRequest(http.MethodDelete, "/categories/uuid-1", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)

	var body categoryResponse
	json.Unmarshal(resp.Body.Bytes(), &body)
	assert.Equal(t, "kategori masih memiliki buku", body.Error["id"])
}
