package handler

import (
	"auth-web-server/config"
	"auth-web-server/internal/apperror"
	"auth-web-server/internal/model/requestresponse"
	"auth-web-server/internal/ports"
	"auth-web-server/internal/security"
	"auth-web-server/internal/util"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"
)

const RefreshTokenCookie = "refreshToken"

type AuthenticationHandler struct {
	ports.AuthenticationService
	authConfig   *config.AuthConfig
	cookieConfig *config.CookieConfig
}

func NewAuthenticationHandler(
	authenticationService ports.AuthenticationService,
	authConfig *config.AuthConfig,
	cookieConfig *config.CookieConfig,
) *AuthenticationHandler {
	return &AuthenticationHandler{
		authenticationService,
		authConfig,
		cookieConfig,
	}
}

// SignUp godoc
// @Summary Регистрация пользователя
// @Description Создаёт пользователя с ролью USER
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.SignUpRequest true "Тело запроса"
// @Success 201 {object} requestresponse.SignUpResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Пустые поля, короткий логин или слабый пароль"
// @Failure 409 {object} requestresponse.ErrorResponse "Логин уже занят"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Failure 503 {object} requestresponse.ErrorResponse "База данных недоступна"
// @Router /auth/signup [post]
func (h *AuthenticationHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.HandleError(w, "некорректный JSON", http.StatusBadRequest)
		return
	}

	summary, err := h.AuthenticationService.SignUp(r.Context(), req.Username, req.Password, req.Nickname)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := requestresponse.SignUpResponse{
		Data: requestresponse.SignUpData{
			Username:    summary.ClientID,
			Nickname:    summary.Name,
			Authorities: []requestresponse.Authority{{AuthorityName: summary.Role}},
		},
	}

	writeJSON(w, http.StatusCreated, resp)
}

// Login godoc
// @Summary Аутентификация пользователя
// @Description Выдаёт access и refresh токены. Оба токена дополнительно кладутся в httpOnly cookie
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.LoginRequest true "Тело запроса"
// @Success 200 {object} requestresponse.LoginResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный JSON или пустые поля"
// @Failure 401 {object} requestresponse.ErrorResponse "Неверный логин или пароль"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Failure 503 {object} requestresponse.ErrorResponse "База данных недоступна"
// @Router /auth/login [post]
func (h *AuthenticationHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.HandleError(w, "некорректный JSON", http.StatusBadRequest)
		return
	}

	if req.Username == "" || req.Password == "" {
		util.HandleError(w, "username и password обязательны", http.StatusBadRequest)
		return
	}

	result, err := h.AuthenticationService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	http.SetCookie(w, h.tokenCookie(security.AccessTokenCookie, result.AccessToken, h.authConfig.AccessTokenTTL))
	http.SetCookie(w, h.tokenCookie(RefreshTokenCookie, result.RefreshToken, h.authConfig.RefreshTokenTTL))

	writeJSON(w, http.StatusOK, requestresponse.LoginResponse{Token: result.AccessToken})
}

// Me godoc
// @Summary Текущий пользователь
// @Description Возвращает id пользователя из access токена
// @Tags Authentication
// @Produce json
// @Param Authorization header string false "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.CurrentUserResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /auth/me [get]
func (h *AuthenticationHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "не авторизован", http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, requestresponse.CurrentUserResponse{UserID: claims.UserID})
}

func (h *AuthenticationHandler) tokenCookie(name, value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieConfig.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// handleServiceError переводит вид ошибки в HTTP статус.
// Клиент видит только безопасное сообщение из apperror.Error
func handleServiceError(w http.ResponseWriter, err error) {
	log.Println(err)

	var appErr *apperror.Error
	if !errors.As(err, &appErr) || appErr.Kind == apperror.KindInternal {
		util.HandleError(w, apperror.ErrInternal.Message, http.StatusInternalServerError)
		return
	}

	util.HandleError(w, appErr.Message, statusFor(appErr.Kind))
}

func statusFor(kind apperror.Kind) int {
	switch kind {
	case apperror.KindInvalidInput:
		return http.StatusBadRequest
	case apperror.KindConflict:
		return http.StatusConflict
	case apperror.KindUnauthorized:
		return http.StatusUnauthorized
	case apperror.KindStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("ошибка записи ответа: %v", err)
	}
}
