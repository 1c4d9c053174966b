package models

// Справочные таблицы тегов: skills, traits, experiences.
// Заполняются сидом/миграцией, через API только читаются.

type Skill struct {
	ID   uint   `gorm:"column:skill_id;primaryKey" json:"skill_id"`
	Name string `gorm:"column:skill_name;uniqueIndex;not null" json:"skill_name"`
}

type Trait struct {
	ID   uint   `gorm:"column:trait_id;primaryKey" json:"trait_id"`
	Name string `gorm:"column:trait_name;uniqueIndex;not null" json:"trait_name"`
}

type Experience struct {
	ID   uint   `gorm:"column:experience_id;primaryKey" json:"experience_id"`
	Name string `gorm:"column:experience_name;uniqueIndex;not null" json:"experience_name"`
}

// Join-строки профиль <-> тег. Пара уникальна: повторная вставка
// той же ассоциации — конфликт на уровне БД.

type WorkerSkill struct {
	ID       uint `gorm:"primaryKey" json:"-"`
	WorkerID uint `gorm:"column:workers_id;not null;uniqueIndex:idx_workers_skills_pair" json:"workers_id"`
	SkillID  uint `gorm:"column:skill_id;not null;uniqueIndex:idx_workers_skills_pair" json:"skill_id"`
}

func (WorkerSkill) TableName() string {
	return "workers_skills"
}

type WorkerTrait struct {
	ID       uint `gorm:"primaryKey" json:"-"`
	WorkerID uint `gorm:"column:workers_id;not null;uniqueIndex:idx_workers_traits_pair" json:"workers_id"`
	TraitID  uint `gorm:"column:trait_id;not null;uniqueIndex:idx_workers_traits_pair" json:"trait_id"`
}

func (WorkerTrait) TableName() string {
	return "workers_traits"
}

type WorkerExperience struct {
	ID           uint `gorm:"primaryKey" json:"-"`
	WorkerID     uint `gorm:"column:workers_id;not null;uniqueIndex:idx_workers_experiences_pair" json:"workers_id"`
	ExperienceID uint `gorm:"column:experience_id;not null;uniqueIndex:idx_workers_experiences_pair" json:"experience_id"`
}

func (WorkerExperience) TableName() string {
	return "workers_experiences"
}

// TagKind различает три вида тегов там, где логика общая
type TagKind string

const (
	TagKindSkill      TagKind = "skill"
	TagKindTrait      TagKind = "trait"
	TagKindExperience TagKind = "experience"
)
