package models

type User struct {
	BaseModel
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	IsBusiness   bool   `gorm:"default:false" json:"is_business"`
	PhoneNumber  string `json:"phone_number"`
	UserImage    string `json:"user_image"`
	// Active = true после подтверждения email
	Active     bool  `gorm:"default:false" json:"active"`
	LocationID *uint `gorm:"index" json:"location_id,omitempty"`

	// Relations
	Location       *Location       `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	WorkerProfiles []WorkerProfile `gorm:"foreignKey:UserID" json:"-"`
	Business       *Business       `gorm:"foreignKey:UserID" json:"-"`
}

type Location struct {
	BaseModel
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	Province      string `json:"province"`
	PostalCode    string `json:"postal_code"`
}
