package config

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultAccessTokenTTL  = time.Hour
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour
	DefaultSaltRounds      = 10
	DefaultIssuer          = "auth-web-server"
	DefaultCacheTTL        = 10 * time.Minute
)

// AuthConfig : проверенные настройки аутентификации.
// Создаётся один раз при старте и дальше только читается.
type AuthConfig struct {
	SecretKey       string
	Issuer          string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	SaltRounds      int
}

// AuthConfig собирает AuthConfig из сырых значений, подставляя значения по умолчанию
func (c *AppConfig) AuthConfig() (*AuthConfig, error) {
	if c.JWT.SecretKey == "" {
		return nil, fmt.Errorf("не задан секретный ключ JWT")
	}

	accessTTL, err := parseTTL(c.JWT.AccessTokenTTL, DefaultAccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("access_token_ttl: %w", err)
	}

	refreshTTL, err := parseTTL(c.JWT.RefreshTokenTTL, DefaultRefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("refresh_token_ttl: %w", err)
	}

	rounds := c.Password.SaltRounds
	if rounds == 0 {
		rounds = DefaultSaltRounds
	}
	if rounds < bcrypt.MinCost || rounds > bcrypt.MaxCost {
		return nil, fmt.Errorf("salt_rounds должен быть в диапазоне [%d, %d], получено %d", bcrypt.MinCost, bcrypt.MaxCost, rounds)
	}

	issuer := c.JWT.Issuer
	if issuer == "" {
		issuer = DefaultIssuer
	}

	return &AuthConfig{
		SecretKey:       c.JWT.SecretKey,
		Issuer:          issuer,
		AccessTokenTTL:  accessTTL,
		RefreshTokenTTL: refreshTTL,
		SaltRounds:      rounds,
	}, nil
}

// TTL возвращает время жизни записей в кэше Redis
func (c *RedisConfig) TTL() (time.Duration, error) {
	return parseTTL(c.CacheTTL, DefaultCacheTTL)
}

func parseTTL(raw string, fallback time.Duration) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}

	// число без единиц измерения трактуется как миллисекунды
	var ttl time.Duration
	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
		ttl = time.Duration(ms) * time.Millisecond
	} else {
		ttl, err = time.ParseDuration(raw)
		if err != nil {
			return 0, fmt.Errorf("ошибка парсинга: %w", err)
		}
	}
	if ttl <= 0 {
		return 0, fmt.Errorf("значение должно быть положительным: %s", raw)
	}

	return ttl, nil
}
