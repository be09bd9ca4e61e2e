package security

import (
	"auth-web-server/internal/util"
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
)

type contextKey string

const (
	UserContextKey contextKey = "user"

	// AccessTokenCookie : cookie, в которую кладётся access токен при входе
	AccessTokenCookie = "authorization"
)

type TokenParser interface {
	ParseAccessToken(tokenStr string) (*Claims, error)
}

func JWTMiddleware(parser TokenParser) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(handleAuthentication(parser, next))
	}
}

func handleAuthentication(parser TokenParser, next http.Handler) func(writer http.ResponseWriter, request *http.Request) {
	return func(writer http.ResponseWriter, request *http.Request) {
		token, ok := extractToken(request)
		if !ok {
			util.HandleError(writer, "не авторизован", http.StatusUnauthorized)
			return
		}

		claims, err := parser.ParseAccessToken(token)
		if err != nil {
			log.Printf("невалидный токен: %v", err)
			util.HandleError(writer, "невалидный токен", http.StatusUnauthorized)
			return
		}

		req := request.WithContext(context.WithValue(request.Context(), UserContextKey, claims))
		next.ServeHTTP(writer, req)
	}
}

// extractToken берёт токен из заголовка Authorization, а если его нет, то из cookie
func extractToken(request *http.Request) (string, bool) {
	authorizationHeader := request.Header.Get("Authorization")
	if strings.HasPrefix(authorizationHeader, "Bearer ") {
		token := strings.TrimPrefix(authorizationHeader, "Bearer ")
		return token, token != ""
	}

	cookie, err := request.Cookie(AccessTokenCookie)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

func GetClaimsFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(UserContextKey).(*Claims)
	if !ok || claims == nil {
		return nil, fmt.Errorf("пользователь не авторизован")
	}
	return claims, nil
}
