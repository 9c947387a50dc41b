package service

import "errors"

// Ошибки сервисного слоя. Для блоб-хранилища см. пакет storage.
var (
	// ErrNotFound — запись (item или link) с таким id не существует.
	ErrNotFound = errors.New("not found")
	// ErrUserNotFound — учётной записи с таким именем нет.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser — имя уже занято; существующий хеш не перетирается.
	ErrDuplicateUser = errors.New("user already exists")
	// ErrInvalidCategory — категория вне фиксированного набора.
	ErrInvalidCategory = errors.New("invalid category")
)
