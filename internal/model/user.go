package model

// User — учётная запись. Username — первичный ключ, поэтому повторная
// вставка того же имени отклоняется самой БД и не перетирает хеш.
type User struct {
	Username     string `gorm:"primaryKey" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`
}
