package models

// WorkerProfile - один из именованных профилей воркера.
// У пользователя может быть несколько профилей, но не более одного primary;
// инвариант поддерживается транзакционно в WorkerProfileService.
type WorkerProfile struct {
	BaseModel
	UserID      uint    `gorm:"not null;index;uniqueIndex:idx_workers_user_profile_name" json:"user_id"`
	FirstName   string  `gorm:"not null" json:"first_name"`
	LastName    string  `gorm:"not null" json:"last_name"`
	ProfileName string  `gorm:"not null;uniqueIndex:idx_workers_user_profile_name" json:"profile_name"`
	RoleName    *string `json:"role_name"`
	IsPrimary   bool    `gorm:"default:false;index" json:"is_primary"`
}

func (WorkerProfile) TableName() string {
	return "workers"
}

type Business struct {
	BaseModel
	UserID              uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	BusinessName        string `gorm:"not null" json:"business_name"`
	BusinessDescription string `json:"business_description"`
}
