package models

import (
	"time"
)

type Book struct {
	ID            string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Judul         string    `json:"judul" gorm:"uniqueIndex;size:255"`
	Penulis       string    `json:"penulis" gorm:"size:255"`
	TahunTerbit   int       `json:"tahun_terbit" gorm:"column:tahun_terbit"`
	JumlahHalaman *int      `json:"jumlah_halaman" gorm:"column:jumlah_halaman"`
	Image         *string   `json:"image"`
	CategoryID    string    `json:"category_id" gorm:"column:category_id;type:uuid"`
	Category      *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	ImageURL      *string   `json:"image_url" gorm:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BookInput binds from JSON or multipart form; the cover file itself is read
// separately with c.FormFile.
type BookInput struct {
	Judul         string `json:"judul" form:"judul" binding:"required,max=255"`
	Penulis       string `json:"penulis" form:"penulis" binding:"required,max=255"`
	TahunTerbit   int    `json:"tahun_terbit" form:"tahun_terbit" binding:"required,min=1900,max=9999"`
	JumlahHalaman *int   `json:"jumlah_halaman" form:"jumlah_halaman" binding:"omitempty,min=0,max=10000"`
	CategoryID    string `json:"category_id" form:"category_id" binding:"required"`
}

func (Book) TableName() string {
	return "books"
}
