// Package services holds the entity services: CRUD over books and categories,
// independent of the HTTP transport.
package services

import (
	"errors"

	"library-backend/db"
	"library-backend/models"
	"library-backend/utils"

	"gorm.io/gorm"
)

func ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := db.DB.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func CreateCategory(input models.CategoryInput) (*models.Category, error) {
	taken, err := categoryNameTaken(input.Name, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, utils.FieldError("name", "nama kategori sudah digunakan")
	}

	category := models.Category{Name: input.Name}
	if err := db.DB.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// GetCategory loads one category with its books eager-loaded.
func GetCategory(id string) (*models.Category, error) {
	var category models.Category
	err := db.DB.Preload("Books").First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &utils.NotFoundError{Resource: "Kategori"}
		}
		return nil, err
	}

	for i := range category.Books {
		attachImageURL(&category.Books[i])
	}
	return &category, nil
}

func UpdateCategory(id string, input models.CategoryInput) (*models.Category, error) {
	var category models.Category
	if err := db.DB.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &utils.NotFoundError{Resource: "Kategori"}
		}
		return nil, err
	}

	taken, err := categoryNameTaken(input.Name, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, utils.FieldError("name", "nama kategori sudah digunakan")
	}

	category.Name = input.Name
	if err := db.DB.Save(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory refuses to delete a category that still has books, so no
// book is ever left pointing at a missing category.
func DeleteCategory(id string) error {
	var category models.Category
	if err := db.DB.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &utils.NotFoundError{Resource: "Kategori"}
		}
		return err
	}

	var bookCount int64
	if err := db.DB.Model(&models.Book{}).Where("category_id = ?", id).Count(&bookCount).Error; err != nil {
		return err
	}
	if bookCount > 0 {
		return utils.FieldError("id", "kategori masih memiliki buku")
	}

	return db.DB.Delete(&category).Error
}

// categoryNameTaken reports whether another category already uses the name.
// excludeID lets an update keep the record's own name.
func categoryNameTaken(name, excludeID string) (bool, error) {
	query := db.DB.Where("name = ?", name)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var existing models.Category
	err := query.First(&existing).Error
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}
