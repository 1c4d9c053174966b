package dto

import "time"

// LocationResponse - адрес пользователя
type LocationResponse struct {
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	Province      string `json:"province"`
	PostalCode    string `json:"postal_code"`
}

// BusinessResponse - business-аккаунт пользователя
type BusinessResponse struct {
	ID                  uint   `json:"id"`
	BusinessName        string `json:"business_name"`
	BusinessDescription string `json:"business_description"`
}

// UserDetailsResponse - карточка пользователя: учётные данные,
// локация и либо primary-профиль, либо business-данные.
type UserDetailsResponse struct {
	ID          uint      `json:"id"`
	Email       string    `json:"email"`
	IsBusiness  bool      `json:"is_business"`
	PhoneNumber string    `json:"phone_number"`
	UserImage   string    `json:"user_image"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`

	Location       *LocationResponse      `json:"location,omitempty"`
	PrimaryProfile *WorkerProfileResponse `json:"primary_profile,omitempty"`
	Business       *BusinessResponse      `json:"business,omitempty"`
}

// UpdateUserRequest - обновление учётных данных пользователя
type UpdateUserRequest struct {
	PhoneNumber *string `json:"phone_number,omitempty" validate:"omitempty,max=30"`
	UserImage   *string `json:"user_image,omitempty" validate:"omitempty,max=500"`
}
