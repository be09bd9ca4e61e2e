package model

import "time"

// RefreshToken : запись о выданном refresh-токене
type RefreshToken struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Token     string    `db:"token"`
	ExpiredAt time.Time `db:"expired_at"`
	CreatedAt time.Time `db:"created_at"`
}

// TokensPair содержит пару access и refresh токенов
type TokensPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthResult : результат успешного входа
type AuthResult struct {
	UserID       int64
	ClientID     string
	Name         string
	Role         string
	AccessToken  string
	RefreshToken string
}
