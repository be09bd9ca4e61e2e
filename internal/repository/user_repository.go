package repository

import (
	"auth-web-server/config"
	"auth-web-server/internal/model"
	"auth-web-server/internal/util"
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type UserRepository struct {
	*config.Database
}

func NewUserRepository(database *config.Database) *UserRepository {
	return &UserRepository{database}
}

// FindByClientID : ищет пользователя по логину.
// Если пользователя нет, возвращает (nil, nil)
func (r *UserRepository) FindByClientID(ctx context.Context, clientID string) (*model.Identity, error) {
	query := `SELECT id, client_id, password_hash, name, role, created_at FROM users WHERE client_id = $1`

	var identity model.Identity
	err := sqlx.GetContext(ctx, r.DB, &identity, query, clientID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, util.LogError("[UserRepo] не удалось найти пользователя по логину", classify(err))
	}

	return &identity, nil
}

// CreateUser : сохраняет нового пользователя.
// Уникальность логина гарантирует ограничение UNIQUE в таблице users
func (r *UserRepository) CreateUser(ctx context.Context, identity *model.Identity) (*model.Identity, error) {
	query := `
	INSERT INTO users (client_id, password_hash, name, role)
	VALUES ($1, $2, $3, $4)
	RETURNING id, client_id, password_hash, name, role, created_at
	`

	created := &model.Identity{}
	err := r.DB.QueryRowxContext(ctx, query, identity.ClientID, identity.PasswordHash, identity.Name, identity.Role).
		StructScan(created)
	if err != nil {
		return nil, util.LogError("[UserRepo] ошибка вставки данных в БД", classify(err))
	}

	return created, nil
}
