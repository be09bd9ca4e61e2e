// Package apperror описывает типизированные ошибки ядра аутентификации.
// Адаптер (HTTP) сам решает, какой статус вернуть для каждого Kind.
package apperror

import "errors"

type Kind int

const (
	KindInternal Kind = iota
	KindInvalidInput
	KindConflict
	KindUnauthorized
	KindStoreUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	case KindStoreUnavailable:
		return "store_unavailable"
	default:
		return "internal"
	}
}

// Error : ошибка с видом и безопасным сообщением.
// Message можно показывать клиенту, Err остаётся внутри сервиса.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is сравнивает только вид ошибки, поэтому errors.Is(err, apperror.ErrConflict)
// срабатывает для любого сообщения
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrInvalidInput     = &Error{Kind: KindInvalidInput, Message: "некорректные данные"}
	ErrConflict         = &Error{Kind: KindConflict, Message: "конфликт данных"}
	ErrUnauthorized     = &Error{Kind: KindUnauthorized, Message: "неверный логин или пароль"}
	ErrStoreUnavailable = &Error{Kind: KindStoreUnavailable, Message: "хранилище недоступно, попробуйте позже"}
	ErrInternal         = &Error{Kind: KindInternal, Message: "внутренняя ошибка сервера"}
)

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf возвращает вид ошибки; всё, что не *Error, считается внутренней ошибкой
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Retryable : повтор имеет смысл только при недоступности хранилища
func Retryable(err error) bool {
	return KindOf(err) == KindStoreUnavailable
}
