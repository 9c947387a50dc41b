package model

import "time"

// Link — именованная внешняя ссылка. Формат URL не проверяется.
type Link struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	URL       string    `gorm:"not null" json:"url"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}
