package repositories

import (
	"errors"
	"fmt"

	"flexygig/internal/models"

	"gorm.io/gorm"
)

var ErrDuplicateTagAssociation = errors.New("tag already associated with this profile")

// WorkerTagRow - join-строка тега профиля с именем из справочной таблицы
type WorkerTagRow struct {
	TagID uint   `json:"tag_id"`
	Name  string `json:"name"`
}

// TagRepository обслуживает справочники тегов и join-таблицы
// workers_skills / workers_traits / workers_experiences.
type TagRepository interface {
	ListSkills(db *gorm.DB) ([]models.Skill, error)
	ListTraits(db *gorm.DB) ([]models.Trait, error)
	ListExperiences(db *gorm.DB) ([]models.Experience, error)

	Add(db *gorm.DB, kind models.TagKind, workerID, tagID uint) error
	ClearAll(db *gorm.DB, kind models.TagKind, workerID uint) error
	ListForWorker(db *gorm.DB, kind models.TagKind, workerID uint) ([]WorkerTagRow, error)
}

type TagRepositoryImpl struct{}

func NewTagRepository() TagRepository {
	return &TagRepositoryImpl{}
}

func (r *TagRepositoryImpl) ListSkills(db *gorm.DB) ([]models.Skill, error) {
	var skills []models.Skill
	err := db.Order("skill_id ASC").Find(&skills).Error
	return skills, err
}

func (r *TagRepositoryImpl) ListTraits(db *gorm.DB) ([]models.Trait, error) {
	var traits []models.Trait
	err := db.Order("trait_id ASC").Find(&traits).Error
	return traits, err
}

func (r *TagRepositoryImpl) ListExperiences(db *gorm.DB) ([]models.Experience, error) {
	var experiences []models.Experience
	err := db.Order("experience_id ASC").Find(&experiences).Error
	return experiences, err
}

func (r *TagRepositoryImpl) Add(db *gorm.DB, kind models.TagKind, workerID, tagID uint) error {
	var err error
	switch kind {
	case models.TagKindSkill:
		err = db.Create(&models.WorkerSkill{WorkerID: workerID, SkillID: tagID}).Error
	case models.TagKindTrait:
		err = db.Create(&models.WorkerTrait{WorkerID: workerID, TraitID: tagID}).Error
	case models.TagKindExperience:
		err = db.Create(&models.WorkerExperience{WorkerID: workerID, ExperienceID: tagID}).Error
	default:
		return fmt.Errorf("unknown tag kind: %s", kind)
	}

	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateTagAssociation
		}
		return err
	}
	return nil
}

func (r *TagRepositoryImpl) ClearAll(db *gorm.DB, kind models.TagKind, workerID uint) error {
	switch kind {
	case models.TagKindSkill:
		return db.Where("workers_id = ?", workerID).Delete(&models.WorkerSkill{}).Error
	case models.TagKindTrait:
		return db.Where("workers_id = ?", workerID).Delete(&models.WorkerTrait{}).Error
	case models.TagKindExperience:
		return db.Where("workers_id = ?", workerID).Delete(&models.WorkerExperience{}).Error
	default:
		return fmt.Errorf("unknown tag kind: %s", kind)
	}
}

func (r *TagRepositoryImpl) ListForWorker(db *gorm.DB, kind models.TagKind, workerID uint) ([]WorkerTagRow, error) {
	var rows []WorkerTagRow
	var err error

	switch kind {
	case models.TagKindSkill:
		err = db.Table("workers_skills").
			Select("skills.skill_id AS tag_id, skills.skill_name AS name").
			Joins("INNER JOIN skills ON workers_skills.skill_id = skills.skill_id").
			Where("workers_skills.workers_id = ?", workerID).
			Order("skills.skill_id ASC").
			Scan(&rows).Error
	case models.TagKindTrait:
		err = db.Table("workers_traits").
			Select("traits.trait_id AS tag_id, traits.trait_name AS name").
			Joins("INNER JOIN traits ON workers_traits.trait_id = traits.trait_id").
			Where("workers_traits.workers_id = ?", workerID).
			Order("traits.trait_id ASC").
			Scan(&rows).Error
	case models.TagKindExperience:
		err = db.Table("workers_experiences").
			Select("experiences.experience_id AS tag_id, experiences.experience_name AS name").
			Joins("INNER JOIN experiences ON workers_experiences.experience_id = experiences.experience_id").
			Where("workers_experiences.workers_id = ?", workerID).
			Order("experiences.experience_id ASC").
			Scan(&rows).Error
	default:
		return nil, fmt.Errorf("unknown tag kind: %s", kind)
	}

	return rows, err
}
