package services

import (
	"errors"
	"mime/multipart"

	"library-backend/db"
	"library-backend/models"
	"library-backend/storage"
	"library-backend/utils"

	"gorm.io/gorm"
)

func ListBooks() ([]models.Book, error) {
	var books []models.Book
	if err := db.DB.Preload("Category").Find(&books).Error; err != nil {
		return nil, err
	}

	for i := range books {
		attachImageURL(&books[i])
	}
	return books, nil
}

// CreateBook persists a new book, storing the cover image first when one was
// uploaded.
func CreateBook(input models.BookInput, image *multipart.FileHeader) (*models.Book, error) {
	taken, err := bookTitleTaken(input.Judul, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, utils.FieldError("judul", "judul sudah digunakan")
	}

	if err := categoryExists(input.CategoryID); err != nil {
		return nil, err
	}

	book := models.Book{
		Judul:         input.Judul,
		Penulis:       input.Penulis,
		TahunTerbit:   input.TahunTerbit,
		JumlahHalaman: input.JumlahHalaman,
		CategoryID:    input.CategoryID,
	}

	if image != nil {
		if err := storage.ValidateImage(image); err != nil {
			return nil, err
		}
		path, err := storage.Save(image, "books")
		if err != nil {
			return nil, &utils.StorageError{Op: "save", Err: err}
		}
		book.Image = &path
	}

	if err := db.DB.Create(&book).Error; err != nil {
		return nil, err
	}

	return loadBook(book.ID)
}

// GetBook loads one book with its category eager-loaded.
func GetBook(id string) (*models.Book, error) {
	var book models.Book
	err := db.DB.Preload("Category").First(&book, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &utils.NotFoundError{Resource: "Buku"}
		}
		return nil, err
	}

	attachImageURL(&book)
	return &book, nil
}

// UpdateBook applies the new field values. A newly uploaded cover replaces the
// stored file: the old file is deleted first (best effort, no rollback if the
// record write fails afterwards).
func UpdateBook(id string, input models.BookInput, image *multipart.FileHeader) (*models.Book, error) {
	var book models.Book
	if err := db.DB.First(&book, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &utils.NotFoundError{Resource: "Buku"}
		}
		return nil, err
	}

	taken, err := bookTitleTaken(input.Judul, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, utils.FieldError("judul", "judul sudah digunakan")
	}

	if err := categoryExists(input.CategoryID); err != nil {
		return nil, err
	}

	if image != nil {
		if err := storage.ValidateImage(image); err != nil {
			return nil, err
		}
		if book.Image != nil && storage.Exists(*book.Image) {
			if err := storage.Delete(*book.Image); err != nil {
				return nil, &utils.StorageError{Op: "delete", Err: err}
			}
		}
		path, err := storage.Save(image, "books")
		if err != nil {
			return nil, &utils.StorageError{Op: "save", Err: err}
		}
		book.Image = &path
	}

	book.Judul = input.Judul
	book.Penulis = input.Penulis
	book.TahunTerbit = input.TahunTerbit
	book.JumlahHalaman = input.JumlahHalaman
	book.CategoryID = input.CategoryID

	if err := db.DB.Save(&book).Error; err != nil {
		return nil, err
	}

	return loadBook(book.ID)
}

// DeleteBook removes the stored cover (when present) before deleting the
// record.
func DeleteBook(id string) error {
	var book models.Book
	if err := db.DB.First(&book, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &utils.NotFoundError{Resource: "Buku"}
		}
		return err
	}

	if book.Image != nil && storage.Exists(*book.Image) {
		if err := storage.Delete(*book.Image); err != nil {
			return &utils.StorageError{Op: "delete", Err: err}
		}
	}

	return db.DB.Delete(&book).Error
}

// loadBook reloads a book with its category for the response body.
func loadBook(id string) (*models.Book, error) {
	var book models.Book
	if err := db.DB.Preload("Category").First(&book, "id = ?", id).Error; err != nil {
		return nil, err
	}
	attachImageURL(&book)
	return &book, nil
}

// attachImageURL derives the read-only image_url field from the stored path.
func attachImageURL(book *models.Book) {
	if book.Image == nil {
		return
	}
	url := storage.URL(*book.Image)
	book.ImageURL = &url
}

func bookTitleTaken(judul, excludeID string) (bool, error) {
	query := db.DB.Where("judul = ?", judul)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var existing models.Book
	err := query.First(&existing).Error
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

func categoryExists(id string) error {
	var category models.Category
	err := db.DB.First(&category, "id = ?", id).Error
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.FieldError("category_id", "kategori tidak ditemukan")
	}
	return err
}
