package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Ошибки файлового хранилища.
var (
	// ErrBlobNotFound — блоба нет на диске или его не удалось прочитать.
	ErrBlobNotFound = errors.New("blob not found")
	// ErrStorageCollision — сгенерированное имя уже занято; блоб не перезаписывается.
	ErrStorageCollision = errors.New("stored name collision")
)

// Store — контракт блоб-хранилища для сервисного слоя.
type Store interface {
	// Save пишет содержимое целиком и возвращает сгенерированное имя
	// и число записанных байт. Существующие блобы никогда не перезаписываются.
	Save(data io.Reader, originalName string) (storedName string, size int64, err error)

	// Read возвращает содержимое блоба; ErrBlobNotFound, если файла нет
	// или он нечитаем.
	Read(storedName string) ([]byte, error)

	// Delete удаляет блоб; ErrBlobNotFound, если файла нет.
	Delete(storedName string) error
}

// FileStore хранит блобы в плоском каталоге под именами вида
// <uuid-hex>_<очищенное-оригинальное-имя>.
type FileStore struct {
	dir string
}

var _ Store = (*FileStore)(nil)

// NewFileStore создаёт файловое хранилище поверх каталога dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// EnsureDir создаёт каталог хранилища, если его ещё нет.
func (s *FileStore) EnsureDir() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create upload dir %s: %w", s.dir, err)
	}
	return nil
}

func (s *FileStore) Save(data io.Reader, originalName string) (string, int64, error) {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	storedName := token + "_" + sanitizeName(originalName)
	p := filepath.Join(s.dir, storedName)

	// O_EXCL: случайный токен делает коллизию пренебрежимо маловероятной,
	// но перезаписывать чужой блоб нельзя ни при каких условиях.
	f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return "", 0, fmt.Errorf("%w: %s", ErrStorageCollision, storedName)
		}
		return "", 0, fmt.Errorf("create blob %s: %w", storedName, err)
	}

	n, err := io.Copy(f, data)
	if err != nil {
		// незавершённый файл не должен остаться на диске
		f.Close()
		os.Remove(p)
		return "", 0, fmt.Errorf("write blob %s: %w", storedName, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(p)
		return "", 0, fmt.Errorf("close blob %s: %w", storedName, err)
	}
	return storedName, n, nil
}

func (s *FileStore) Read(storedName string) ([]byte, error) {
	p, err := s.blobPath(storedName)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrBlobNotFound, storedName)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrBlobNotFound, storedName, err)
	}
	return b, nil
}

func (s *FileStore) Delete(storedName string) error {
	p, err := s.blobPath(storedName)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrBlobNotFound, storedName)
		}
		return fmt.Errorf("delete blob %s: %w", storedName, err)
	}
	return nil
}

// blobPath отклоняет имена с разделителями пути: наружу мы выдаём только
// плоские имена, всё прочее — не наш блоб.
func (s *FileStore) blobPath(storedName string) (string, error) {
	if storedName == "" || filepath.Base(storedName) != storedName {
		return "", fmt.Errorf("%w: %s", ErrBlobNotFound, storedName)
	}
	return filepath.Join(s.dir, storedName), nil
}

// sanitizeName приводит пользовательское имя файла к безопасному виду:
// отбрасывает компоненты пути и всё, кроме [A-Za-z0-9._-].
func sanitizeName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		}
	}
	out := strings.Trim(b.String(), ".")
	if out == "" {
		out = "file"
	}
	return out
}
