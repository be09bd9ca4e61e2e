package config

type DatabaseConfig struct {
	DSN string `yaml:"dsn" env:"DATABASE_DSN"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB"`
	CacheTTL string `yaml:"cache_ttl" env:"REDIS_CACHE_TTL"`
}

type JWTConfig struct {
	SecretKey       string `yaml:"secret_key" env:"JWT_SECRET_KEY"`
	Issuer          string `yaml:"issuer"`
	AccessTokenTTL  string `yaml:"access_token_ttl" env:"AUTH_TOKEN_EXPIRE"`
	RefreshTokenTTL string `yaml:"refresh_token_ttl" env:"REFRESH_TOKEN_EXPIRE"`
}

type PasswordConfig struct {
	SaltRounds int `yaml:"salt_rounds" env:"SALT_ROUNDS"`
}

type CookieConfig struct {
	Secure bool `yaml:"secure" env:"COOKIE_SECURE"`
}
