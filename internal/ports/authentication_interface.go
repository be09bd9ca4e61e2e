package ports

import (
	"auth-web-server/internal/model"
	"context"
)

// AuthenticationService : ядро аутентификации, которым пользуется HTTP слой
type AuthenticationService interface {
	SignUp(ctx context.Context, clientID, password, name string) (*model.IdentitySummary, error)
	Authenticate(ctx context.Context, clientID, password string) (*model.AuthResult, error)
}
