package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

const (
	AccountTypeWorker   = "worker"
	AccountTypeBusiness = "business"
)

// PendingUser - заявка на регистрацию, ожидающая подтверждения email.
// Хранит полный payload регистрации; при переходе по ссылке из письма
// превращается в User + профиль и удаляется.
type PendingUser struct {
	BaseModel
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	AccountType  string `gorm:"type:varchar(20);not null"` // worker | business

	FirstName   string
	LastName    string
	ProfileName string
	RoleName    *string

	BusinessName        string
	BusinessDescription string

	PhoneNumber string
	Photo       string

	StreetAddress string
	City          string
	Province      string
	PostalCode    string

	Token string `gorm:"uniqueIndex;not null"`

	// Выбранные теги как списки id, jsonb
	Skills      datatypes.JSON `gorm:"type:jsonb"`
	Experiences datatypes.JSON `gorm:"type:jsonb"`
	Traits      datatypes.JSON `gorm:"type:jsonb"`
}

func (p *PendingUser) SkillIDs() []uint {
	return decodeIDs(p.Skills)
}

func (p *PendingUser) ExperienceIDs() []uint {
	return decodeIDs(p.Experiences)
}

func (p *PendingUser) TraitIDs() []uint {
	return decodeIDs(p.Traits)
}

func (p *PendingUser) SetSkillIDs(ids []uint) {
	p.Skills = encodeIDs(ids)
}

func (p *PendingUser) SetExperienceIDs(ids []uint) {
	p.Experiences = encodeIDs(ids)
}

func (p *PendingUser) SetTraitIDs(ids []uint) {
	p.Traits = encodeIDs(ids)
}

func decodeIDs(raw datatypes.JSON) []uint {
	var ids []uint
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &ids)
	}
	return ids
}

func encodeIDs(ids []uint) datatypes.JSON {
	if ids == nil {
		ids = []uint{}
	}
	data, _ := json.Marshal(ids)
	return datatypes.JSON(data)
}
