package service

import (
	"auth-web-server/config"
	"auth-web-server/internal/apperror"
	"auth-web-server/internal/model"
	"auth-web-server/internal/ports"
	"auth-web-server/internal/security"
	"auth-web-server/internal/util"
	"context"
	"errors"
	"log"
	"time"
)

// RefreshTokenRetention : сколько хранится запись о refresh-токене в БД.
// Не зависит от настраиваемого времени жизни самого токена
const RefreshTokenRetention = 7 * 24 * time.Hour

const (
	msgEmptyFields        = "заполните все поля: логин, пароль и имя"
	msgClientIDTooShort   = "логин должен содержать не меньше 4 символов"
	msgWeakPassword       = "пароль должен содержать не меньше 6 символов и состоять из латинских букв и цифр, минимум одна буква и одна цифра"
	msgAlreadyRegistered  = "пользователь с таким логином уже зарегистрирован"
	msgInvalidCredentials = "неверный логин или пароль"
)

type AuthenticationService struct {
	store      ports.CredentialStore
	jwtService ports.JWTServiceInterface
	cfg        *config.AuthConfig
	dummyHash  string
	now        func() time.Time
}

func NewAuthenticationService(
	store ports.CredentialStore,
	jwtService ports.JWTServiceInterface,
	cfg *config.AuthConfig,
) *AuthenticationService {
	// хэш для несуществующих пользователей, чтобы время ответа не выдавало, есть ли логин
	dummyHash, err := security.HashPassword("no-such-user-0", cfg.SaltRounds)
	if err != nil {
		log.Printf("[AuthService] не удалось подготовить фиктивный хэш: %v", err)
	}

	return &AuthenticationService{
		store:      store,
		jwtService: jwtService,
		cfg:        cfg,
		dummyHash:  dummyHash,
		now:        time.Now,
	}
}

// SignUp регистрирует нового пользователя.
// Проверки выполняются по порядку, возвращается первая найденная ошибка:
//  1. все поля заполнены;
//  2. логин не короче 4 символов;
//  3. пароль удовлетворяет политике;
//  4. логин ещё не занят.
//
// Хэширование начинается только после проверки уникальности.
func (s *AuthenticationService) SignUp(ctx context.Context, clientID, password, name string) (*model.IdentitySummary, error) {
	if clientID == "" || password == "" || name == "" {
		return nil, apperror.New(apperror.KindInvalidInput, msgEmptyFields)
	}
	if !util.ValidClientID(clientID) {
		return nil, apperror.New(apperror.KindInvalidInput, msgClientIDTooShort)
	}
	if !util.ValidPassword(password) {
		return nil, apperror.New(apperror.KindInvalidInput, msgWeakPassword)
	}

	existing, err := s.store.FindByIdentifier(ctx, clientID)
	if err != nil {
		return nil, storeFailure("[AuthService] ошибка поиска пользователя", err)
	}
	if existing != nil {
		return nil, apperror.New(apperror.KindConflict, msgAlreadyRegistered)
	}

	hash, err := security.HashPassword(password, s.cfg.SaltRounds)
	if err != nil {
		return nil, internalFailure("[AuthService] не удалось создать хэш пароля", err)
	}

	created, err := s.store.Create(ctx, clientID, hash, name)
	if err != nil {
		// проиграли гонку с параллельной регистрацией того же логина
		if errors.Is(err, ports.ErrDuplicateIdentifier) {
			return nil, apperror.Wrap(apperror.KindConflict, msgAlreadyRegistered, err)
		}
		return nil, storeFailure("[AuthService] ошибка создания пользователя", err)
	}

	return created.Summary(), nil
}

// Authenticate проверяет логин и пароль и выдаёт пару токенов.
// Refresh-токен сохраняется в БД до того, как пара будет возвращена.
// Для неизвестного логина и неверного пароля возвращается одна и та же ошибка.
func (s *AuthenticationService) Authenticate(ctx context.Context, clientID, password string) (*model.AuthResult, error) {
	identity, err := s.store.FindByIdentifier(ctx, clientID)
	if err != nil {
		return nil, storeFailure("[AuthService] ошибка поиска пользователя", err)
	}

	if identity == nil {
		security.CheckPassword(password, s.dummyHash)
		return nil, apperror.New(apperror.KindUnauthorized, msgInvalidCredentials)
	}
	if !security.CheckPassword(password, identity.PasswordHash) {
		return nil, apperror.New(apperror.KindUnauthorized, msgInvalidCredentials)
	}

	tokens, err := s.jwtService.GenerateAccessRefreshTokens(identity.ID)
	if err != nil {
		return nil, internalFailure("[AuthService] ошибка генерации токенов", err)
	}

	expiredAt := s.now().Add(RefreshTokenRetention)
	if err := s.store.SaveRefreshToken(ctx, identity.ID, tokens.RefreshToken, expiredAt); err != nil {
		return nil, internalFailure("[AuthService] ошибка сохранения refresh токена", err)
	}

	return &model.AuthResult{
		UserID:       identity.ID,
		ClientID:     identity.ClientID,
		Name:         identity.Name,
		Role:         identity.Role,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// storeFailure отделяет недоступность хранилища от прочих сбоев.
// Причина пишется в лог, клиенту уходит только безопасное сообщение
func storeFailure(message string, err error) error {
	cause := util.LogError(message, err)
	if errors.Is(err, ports.ErrStoreUnavailable) {
		return apperror.Wrap(apperror.KindStoreUnavailable, apperror.ErrStoreUnavailable.Message, cause)
	}
	return apperror.Wrap(apperror.KindInternal, apperror.ErrInternal.Message, cause)
}

func internalFailure(message string, err error) error {
	return apperror.Wrap(apperror.KindInternal, apperror.ErrInternal.Message, util.LogError(message, err))
}
