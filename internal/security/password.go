package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes : bcrypt учитывает только первые 72 байта пароля
const MaxPasswordBytes = 72

// HashPassword возвращает bcrypt-хэш пароля с заданной стоимостью.
// Соль генерируется bcrypt для каждого вызова.
// Пароль длиннее 72 байт обрезается, а не отклоняется.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncatePassword(password), cost)
	if err != nil {
		return "", fmt.Errorf("ошибка хэширования пароля: %w", err)
	}
	return string(hash), nil
}

func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncatePassword(password)) == nil
}

func truncatePassword(password string) []byte {
	raw := []byte(password)
	if len(raw) > MaxPasswordBytes {
		return raw[:MaxPasswordBytes]
	}
	return raw
}
