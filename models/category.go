package models

import (
	"time"
)

type Category struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"uniqueIndex;size:255"`
	Books     []Book    `json:"books,omitempty" gorm:"foreignKey:CategoryID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CategoryInput struct {
	Name string `json:"name" form:"name" binding:"required,max=255"`
}

func (Category) TableName() string {
	return "categories"
}
