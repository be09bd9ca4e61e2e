package repository

import (
	"auth-web-server/config"
	"auth-web-server/internal/model"
	"auth-web-server/internal/util"
	"context"
)

type JWTRepository struct {
	*config.Database
}

func NewJWTRepository(database *config.Database) *JWTRepository {
	return &JWTRepository{database}
}

// SaveRefreshToken сохраняет refresh-токен в базе данных
// Возвращает ошибку, если операция не удалась
func (r *JWTRepository) SaveRefreshToken(ctx context.Context, refreshToken *model.RefreshToken) error {
	query := `INSERT INTO refresh_tokens (user_id, token, expired_at) VALUES ($1, $2, $3)`

	_, err := r.DB.ExecContext(ctx, query,
		refreshToken.UserID,
		refreshToken.Token,
		refreshToken.ExpiredAt,
	)
	if err != nil {
		return util.LogError("[JWTRepo] ошибка вставки данных в БД", classify(err))
	}

	return nil
}
