package util

import (
	"regexp"
	"unicode/utf8"
)

const (
	MinClientIDLength = 4
	MinPasswordLength = 6
)

var (
	passwordCharset = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	hasLetter       = regexp.MustCompile(`[A-Za-z]`)
	hasDigit        = regexp.MustCompile(`[0-9]`)
)

// ValidClientID : логин не короче 4 символов
func ValidClientID(clientID string) bool {
	return utf8.RuneCountInString(clientID) >= MinClientIDLength
}

// ValidPassword : не короче 6 символов, только латинские буквы и цифры,
// минимум одна буква и одна цифра
func ValidPassword(password string) bool {
	return len(password) >= MinPasswordLength &&
		passwordCharset.MatchString(password) &&
		hasLetter.MatchString(password) &&
		hasDigit.MatchString(password)
}
