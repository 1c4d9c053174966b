package dto

// SearchUsersRequest - фильтры поиска (query-параметры)
type SearchUsersRequest struct {
	Query      string `form:"q" json:"q" validate:"omitempty,max=200"`
	City       string `form:"city" json:"city" validate:"omitempty,max=100"`
	Skill      string `form:"skill" json:"skill" validate:"omitempty,max=100"`
	Trait      string `form:"trait" json:"trait" validate:"omitempty,max=100"`
	Experience string `form:"experience" json:"experience" validate:"omitempty,max=100"`
	Page       int    `form:"page" json:"page" validate:"omitempty,min=1"`
	PageSize   int    `form:"page_size" json:"page_size" validate:"omitempty,min=1,max=100"`
}

// SearchUserResult - найденный аккаунт. Для воркера заполнены поля
// профиля и теги, для бизнеса - business_name/business_description.
type SearchUserResult struct {
	UserID     uint    `json:"user_id"`
	IsBusiness bool    `json:"is_business"`
	UserImage  string  `json:"user_image"`
	City       *string `json:"city"`
	Province   *string `json:"province"`

	WorkerID    *uint    `json:"worker_id,omitempty"`
	FirstName   *string  `json:"first_name,omitempty"`
	LastName    *string  `json:"last_name,omitempty"`
	ProfileName *string  `json:"profile_name,omitempty"`
	RoleName    *string  `json:"role_name,omitempty"`
	IsPrimary   *bool    `json:"is_primary,omitempty"`
	Skills      []string `json:"skills"`
	Traits      []string `json:"traits"`
	Experiences []string `json:"experiences"`

	BusinessName        *string `json:"business_name,omitempty"`
	BusinessDescription *string `json:"business_description,omitempty"`
}

// SearchUsersResponse - страница результатов поиска
type SearchUsersResponse struct {
	Results  []SearchUserResult `json:"results"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}
