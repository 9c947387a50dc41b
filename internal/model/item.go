package model

import "time"

// Category — раздел хранилища. Набор фиксированный, перекатегоризация
// не предусмотрена.
type Category string

const (
	CategoryFiles  Category = "Files"
	CategoryAudios Category = "Audios"
	CategoryImages Category = "Images"
)

// Categories — допустимые разделы в порядке отображения.
var Categories = []Category{CategoryFiles, CategoryAudios, CategoryImages}

// Valid сообщает, входит ли категория в фиксированный набор.
func (c Category) Valid() bool {
	switch c {
	case CategoryFiles, CategoryAudios, CategoryImages:
		return true
	}
	return false
}

// Item — метаданные загруженного файла.
type Item struct {
	ID int64 `gorm:"primaryKey" json:"id"`

	// Отображаемое имя; по умолчанию совпадает с оригинальным именем файла.
	Name string `gorm:"not null" json:"name"`

	// Имя блоба на диске. Выдаётся файловым хранилищем при загрузке
	// и после этого не меняется.
	StoredName string `gorm:"not null;uniqueIndex" json:"stored_name"`

	// Имя файла, как его прислал пользователь. Используется только
	// для именования скачиваемого артефакта.
	OriginalName string `gorm:"not null" json:"original_name"`

	Category Category `gorm:"not null;index" json:"category"`
	Notes    string   `json:"notes"`
	Size     int64    `json:"size"`

	UploadedAt time.Time `gorm:"autoCreateTime;index" json:"uploaded_at"`
}
