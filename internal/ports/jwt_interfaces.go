package ports

import (
	"auth-web-server/internal/model"
	"auth-web-server/internal/security"
)

type JWTServiceInterface interface {
	GenerateAccessRefreshTokens(userID int64) (*model.TokensPair, error)
	ParseAccessToken(tokenStr string) (*security.Claims, error)
}
