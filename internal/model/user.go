package model

import "time"

const DefaultRole = "USER"

// Identity : учётная запись пользователя.
// Пароль хранится только в виде bcrypt-хэша
type Identity struct {
	ID           int64     `db:"id" json:"id"`
	ClientID     string    `db:"client_id" json:"clientId"`
	PasswordHash string    `db:"password_hash" json:"passwordHash"`
	Name         string    `db:"name" json:"name"`
	Role         string    `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// IdentitySummary : то, что возвращается после регистрации (без хэша)
type IdentitySummary struct {
	ClientID string
	Name     string
	Role     string
}

func (i *Identity) Summary() *IdentitySummary {
	return &IdentitySummary{
		ClientID: i.ClientID,
		Name:     i.Name,
		Role:     i.Role,
	}
}
