package repository

import (
	"auth-web-server/internal/model"
	"auth-web-server/internal/ports"
	"context"
	"log"
	"time"
)

// CredentialStore объединяет пользователей, refresh-токены и (необязательный) кэш Redis.
// Кэш только ускоряет поиск: его ошибки логируются и не ломают запрос.
type CredentialStore struct {
	users  ports.UserRepository
	tokens ports.RefreshTokenRepository
	cache  ports.IdentityCache
}

func NewCredentialStore(users ports.UserRepository, tokens ports.RefreshTokenRepository, cache ports.IdentityCache) *CredentialStore {
	return &CredentialStore{
		users:  users,
		tokens: tokens,
		cache:  cache,
	}
}

func (s *CredentialStore) FindByIdentifier(ctx context.Context, clientID string) (*model.Identity, error) {
	if s.cache != nil {
		cached, err := s.cache.GetIdentity(ctx, clientID)
		if err != nil {
			log.Printf("[CredentialStore] кэш недоступен, идём в БД: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	identity, err := s.users.FindByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	// отсутствующих пользователей не кэшируем, иначе регистрация не увидит изменений
	if identity != nil {
		s.remember(ctx, identity)
	}

	return identity, nil
}

func (s *CredentialStore) Create(ctx context.Context, clientID, passwordHash, name string) (*model.Identity, error) {
	created, err := s.users.CreateUser(ctx, &model.Identity{
		ClientID:     clientID,
		PasswordHash: passwordHash,
		Name:         name,
		Role:         model.DefaultRole,
	})
	if err != nil {
		return nil, err
	}

	s.remember(ctx, created)
	return created, nil
}

func (s *CredentialStore) SaveRefreshToken(ctx context.Context, userID int64, token string, expiredAt time.Time) error {
	return s.tokens.SaveRefreshToken(ctx, &model.RefreshToken{
		UserID:    userID,
		Token:     token,
		ExpiredAt: expiredAt,
	})
}

func (s *CredentialStore) remember(ctx context.Context, identity *model.Identity) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetIdentity(ctx, identity); err != nil {
		log.Printf("[CredentialStore] не удалось положить пользователя в кэш: %v", err)
	}
}
