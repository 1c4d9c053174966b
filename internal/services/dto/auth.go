package dto

// RegisterRequest - запрос регистрации (двухфазная, с подтверждением email)
type RegisterRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	IsBusiness bool   `json:"is_business"`

	PhoneNumber string `json:"phone_number,omitempty" validate:"omitempty,max=30"`
	Photo       string `json:"photo,omitempty" validate:"omitempty,max=500"`

	// Адрес (обязателен для worker-регистрации)
	StreetAddress string `json:"street_address,omitempty"`
	City          string `json:"city,omitempty"`
	Province      string `json:"province,omitempty"`
	PostalCode    string `json:"postal_code,omitempty"`

	// Поля worker-профиля
	FirstName   string  `json:"first_name,omitempty"`
	LastName    string  `json:"last_name,omitempty"`
	ProfileName string  `json:"profile_name,omitempty"`
	RoleName    *string `json:"role_name,omitempty"`

	// Предвыбранные теги профиля (id справочников)
	Skills      []uint `json:"skills,omitempty"`
	Traits      []uint `json:"traits,omitempty"`
	Experiences []uint `json:"experiences,omitempty"`

	// Поля business-аккаунта
	BusinessName        string `json:"business_name,omitempty"`
	BusinessDescription string `json:"business_description,omitempty"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// VerifyEmailRequest - подтверждение email по токену из письма
type VerifyEmailRequest struct {
	Token string `json:"token" validate:"required"`
}

// ResendVerificationRequest - повторная отправка письма подтверждения
type ResendVerificationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordResetRequest - запрос ссылки для сброса пароля
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordResetConfirm - установка нового пароля по токену
type PasswordResetConfirm struct {
	Token           string `json:"token" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// AuthResponse - ответ с JWT и краткими данными пользователя
type AuthResponse struct {
	Token      string `json:"token"`
	UserID     uint   `json:"user_id"`
	Email      string `json:"email"`
	IsBusiness bool   `json:"is_business"`
}

// RegisterResponse - подтверждение принятой заявки на регистрацию
type RegisterResponse struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}
