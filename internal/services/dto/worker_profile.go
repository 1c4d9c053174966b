package dto

import "time"

// CreateWorkerProfileRequest - создание дополнительного профиля
type CreateWorkerProfileRequest struct {
	FirstName   string  `json:"first_name" validate:"required,min=1,max=100"`
	LastName    string  `json:"last_name" validate:"required,min=1,max=100"`
	ProfileName string  `json:"profile_name" validate:"required,min=1,max=100"`
	RoleName    *string `json:"role_name,omitempty" validate:"omitempty,max=100"`
	MakePrimary bool    `json:"make_primary"`
}

// UpdateWorkerProfileRequest - частичное обновление профиля
type UpdateWorkerProfileRequest struct {
	FirstName   *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=100"`
	LastName    *string `json:"last_name,omitempty" validate:"omitempty,min=1,max=100"`
	ProfileName *string `json:"profile_name,omitempty" validate:"omitempty,min=1,max=100"`
	RoleName    *string `json:"role_name,omitempty" validate:"omitempty,max=100"`
}

// WorkerProfileResponse - профиль в ответах API
type WorkerProfileResponse struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	ProfileName string    `json:"profile_name"`
	RoleName    *string   `json:"role_name"`
	IsPrimary   bool      `json:"is_primary"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// WorkerProfileListResponse - список профилей пользователя
type WorkerProfileListResponse struct {
	Profiles []WorkerProfileResponse `json:"profiles"`
	Total    int                     `json:"total"`
}
