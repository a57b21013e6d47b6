package models

// AuthUser - данные пользователя только для отображения.
// Восстанавливается из JWT или профильной cookie, сам по себе не сохраняется.
type AuthUser struct {
	Email     string   `json:"email"`
	Name      string   `json:"name,omitempty"`
	AccountNo string   `json:"accountNo,omitempty"`
	Role      []string `json:"role,omitempty"`
	Exp       *int64   `json:"exp,omitempty"`
	Avatar    string   `json:"avatar,omitempty"`
}

// Session - снимок состояния учётных данных для фронта.
type Session struct {
	Authenticated bool      `json:"authenticated"`
	Initialized   bool      `json:"initialized"`
	User          *AuthUser `json:"user,omitempty"`
}

// SetCredentialRequest - пустое значение удаляет соответствующую cookie.
type SetCredentialRequest struct {
	Login string `json:"login"`
	Token string `json:"token"`
}

// LogoutResponse - куда уводить браузер после выхода.
type LogoutResponse struct {
	RedirectURL string `json:"redirect_url"`
}
