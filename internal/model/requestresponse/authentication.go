package requestresponse

// SignUpRequest : тело запроса на регистрацию
type SignUpRequest struct {
	Username string `json:"username" example:"alice1"`
	Password string `json:"password" example:"pass123"`
	Nickname string `json:"nickname" example:"Alice"`
}

// Authority : роль пользователя
type Authority struct {
	AuthorityName string `json:"authorityName" example:"USER"`
}

// SignUpData : созданный пользователь
type SignUpData struct {
	Username    string      `json:"username" example:"alice1"`
	Nickname    string      `json:"nickname" example:"Alice"`
	Authorities []Authority `json:"authorities"`
}

// SignUpResponse : ответ на успешную регистрацию
type SignUpResponse struct {
	Data SignUpData `json:"data"`
}

// LoginRequest : тело запроса на аутентификацию
type LoginRequest struct {
	Username string `json:"username" example:"alice1"`
	Password string `json:"password" example:"pass123"`
}

// LoginResponse : ответ на успешную аутентификацию
type LoginResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9..."`
}

// CurrentUserResponse : информация о текущем пользователе
type CurrentUserResponse struct {
	UserID int64 `json:"userId" example:"1"`
}

// ErrorResponse : ответ с ошибкой
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"неверный логин или пароль"`
}
