package security

import (
	"auth-web-server/config"
	"auth-web-server/internal/model"
	"auth-web-server/internal/util"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims : в токенах лежит только id пользователя и стандартные поля
type Claims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

type JWTService struct {
	*config.AuthConfig
	now func() time.Time
}

func NewJWTService(cfg *config.AuthConfig) *JWTService {
	return &JWTService{AuthConfig: cfg, now: time.Now}
}

// GenerateAccessRefreshTokens выпускает пару токенов для пользователя.
// Оба токена подписаны одним ключом и отличаются только временем жизни.
func (service *JWTService) GenerateAccessRefreshTokens(userID int64) (*model.TokensPair, error) {
	issuedAt := service.now()

	accessToken, err := service.signToken(userID, issuedAt, service.AccessTokenTTL)
	if err != nil {
		return nil, util.LogError("ошибка подписи access токена", err)
	}

	refreshToken, err := service.signToken(userID, issuedAt, service.RefreshTokenTTL)
	if err != nil {
		return nil, util.LogError("ошибка подписи refresh токена", err)
	}

	return &model.TokensPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (service *JWTService) signToken(userID int64, issuedAt time.Time, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			Issuer:    service.Issuer,
		},
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return jwtToken.SignedString([]byte(service.SecretKey))
}

// ParseAccessToken проверяет подпись и срок действия токена
func (service *JWTService) ParseAccessToken(tokenStr string) (*Claims, error) {
	return service.ValidateJWT(tokenStr, []byte(service.SecretKey))
}

func (service *JWTService) ValidateJWT(jwtTokenStr string, secretKey []byte) (*Claims, error) {
	var claims = &Claims{}

	jwtToken, err := jwt.ParseWithClaims(jwtTokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Header["alg"] != jwt.SigningMethodHS512.Alg() {
			return nil, fmt.Errorf("неверный способ подписи токена: %v", token.Header["alg"])
		}
		return secretKey, nil
	}, jwt.WithIssuer(service.Issuer), jwt.WithTimeFunc(service.now))

	if err != nil {
		return nil, fmt.Errorf("невалидный токен: %w", err)
	}
	if !jwtToken.Valid {
		return nil, fmt.Errorf("невалидный токен")
	}

	return claims, nil
}
