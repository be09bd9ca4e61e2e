package ports

import (
	"auth-web-server/internal/model"
	"context"
)

// IdentityCache : Redis слой
type IdentityCache interface {
	SetIdentity(ctx context.Context, identity *model.Identity) error
	GetIdentity(ctx context.Context, clientID string) (*model.Identity, error)
}
