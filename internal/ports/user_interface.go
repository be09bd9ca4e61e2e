package ports

import (
	"auth-web-server/internal/model"
	"context"
	"errors"
	"time"
)

// CredentialStore : хранилище учётных записей и refresh-токенов.
// FindByIdentifier возвращает (nil, nil), если пользователя нет.
type CredentialStore interface {
	FindByIdentifier(ctx context.Context, clientID string) (*model.Identity, error)
	Create(ctx context.Context, clientID, passwordHash, name string) (*model.Identity, error)
	SaveRefreshToken(ctx context.Context, userID int64, token string, expiredAt time.Time) error
}

// UserRepository : SQL слой пользователей
type UserRepository interface {
	FindByClientID(ctx context.Context, clientID string) (*model.Identity, error)
	CreateUser(ctx context.Context, identity *model.Identity) (*model.Identity, error)
}

// RefreshTokenRepository : SQL слой refresh-токенов
type RefreshTokenRepository interface {
	SaveRefreshToken(ctx context.Context, refreshToken *model.RefreshToken) error
}

var (
	ErrDuplicateIdentifier = errors.New("пользователь с таким логином уже существует")
	ErrStoreUnavailable    = errors.New("хранилище недоступно")
)
