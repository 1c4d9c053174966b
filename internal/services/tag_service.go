package services

import (
	"context"
	"errors"

	"flexygig/internal/cache"
	"flexygig/internal/models"
	"flexygig/internal/repositories"
	"flexygig/internal/services/dto"
	"flexygig/pkg/apperrors"

	"gorm.io/gorm"
)

const (
	cacheKeySkills      = "tags:skills"
	cacheKeyTraits      = "tags:traits"
	cacheKeyExperiences = "tags:experiences"
)

// TagService - справочники тегов и связи профиль↔тег.
// Справочники почти не меняются, поэтому отдаются через read-through кэш.
type TagService interface {
	ListSkills(ctx context.Context, db *gorm.DB) ([]dto.TagResponse, error)
	ListTraits(ctx context.Context, db *gorm.DB) ([]dto.TagResponse, error)
	ListExperiences(ctx context.Context, db *gorm.DB) ([]dto.TagResponse, error)

	AddTag(db *gorm.DB, userID uint, kind models.TagKind, profileID, tagID uint) error
	ClearTags(db *gorm.DB, userID uint, kind models.TagKind, profileID uint) error
	ReplaceTags(db *gorm.DB, userID uint, kind models.TagKind, profileID uint, tagIDs []uint) (*dto.WorkerTagsResponse, error)
	ListTags(db *gorm.DB, kind models.TagKind, profileID uint) (*dto.WorkerTagsResponse, error)
}

type TagServiceImpl struct {
	tagRepo    repositories.TagRepository
	workerRepo repositories.WorkerRepository
	cache      *cache.Cache
}

func NewTagService(tagRepo repositories.TagRepository, workerRepo repositories.WorkerRepository, c *cache.Cache) TagService {
	return &TagServiceImpl{
		tagRepo:    tagRepo,
		workerRepo: workerRepo,
		cache:      c,
	}
}

func (s *TagServiceImpl) ListSkills(ctx context.Context, db *gorm.DB) ([]dto.TagResponse, error) {
	var cached []dto.TagResponse
	if s.cache.GetJSON(ctx, cacheKeySkills, &cached) {
		return cached, nil
	}

	skills, err := s.tagRepo.ListSkills(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := make([]dto.TagResponse, 0, len(skills))
	for _, sk := range skills {
		resp = append(resp, dto.TagResponse{ID: sk.ID, Name: sk.Name})
	}
	s.cache.SetJSON(ctx, cacheKeySkills, resp)
	return resp, nil
}

func (s *TagServiceImpl) ListTraits(ctx context.Context, db *gorm.DB) ([]dto.TagResponse, error) {
	var cached []dto.TagResponse
	if s.cache.GetJSON(ctx, cacheKeyTraits, &cached) {
		return cached, nil
	}

	traits, err := s.tagRepo.ListTraits(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := make([]dto.TagResponse, 0, len(traits))
	for _, t := range traits {
		resp = append(resp, dto.TagResponse{ID: t.ID, Name: t.Name})
	}
	s.cache.SetJSON(ctx, cacheKeyTraits, resp)
	return resp, nil
}

func (s *TagServiceImpl) ListExperiences(ctx context.Context, db *gorm.DB) ([]dto.TagResponse, error) {
	var cached []dto.TagResponse
	if s.cache.GetJSON(ctx, cacheKeyExperiences, &cached) {
		return cached, nil
	}

	experiences, err := s.tagRepo.ListExperiences(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := make([]dto.TagResponse, 0, len(experiences))
	for _, e := range experiences {
		resp = append(resp, dto.TagResponse{ID: e.ID, Name: e.Name})
	}
	s.cache.SetJSON(ctx, cacheKeyExperiences, resp)
	return resp, nil
}

func (s *TagServiceImpl) AddTag(db *gorm.DB, userID uint, kind models.TagKind, profileID, tagID uint) error {
	if _, err := s.workerRepo.FindOwned(db, userID, profileID); err != nil {
		return handleWorkerError(err)
	}
	if err := s.tagRepo.Add(db, kind, profileID, tagID); err != nil {
		return handleTagError(err)
	}
	return nil
}

func (s *TagServiceImpl) ClearTags(db *gorm.DB, userID uint, kind models.TagKind, profileID uint) error {
	if _, err := s.workerRepo.FindOwned(db, userID, profileID); err != nil {
		return handleWorkerError(err)
	}
	if err := s.tagRepo.ClearAll(db, kind, profileID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// ReplaceTags атомарно заменяет все теги одного вида: clear + bulk insert
// в одной транзакции, чтобы не было видимого окна без тегов.
func (s *TagServiceImpl) ReplaceTags(db *gorm.DB, userID uint, kind models.TagKind, profileID uint, tagIDs []uint) (*dto.WorkerTagsResponse, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if _, err := s.workerRepo.FindOwned(tx, userID, profileID); err != nil {
		return nil, handleWorkerError(err)
	}

	if err := s.tagRepo.ClearAll(tx, kind, profileID); err != nil {
		return nil, apperrors.InternalError(err)
	}
	for _, tagID := range tagIDs {
		if err := s.tagRepo.Add(tx, kind, profileID, tagID); err != nil {
			// дубликаты во входном списке схлопываются молча
			if errors.Is(err, repositories.ErrDuplicateTagAssociation) {
				continue
			}
			return nil, handleTagError(err)
		}
	}

	rows, err := s.tagRepo.ListForWorker(tx, kind, profileID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}
	return tagRowsToDTO(profileID, rows), nil
}

func (s *TagServiceImpl) ListTags(db *gorm.DB, kind models.TagKind, profileID uint) (*dto.WorkerTagsResponse, error) {
	if _, err := s.workerRepo.FindByID(db, profileID); err != nil {
		return nil, handleWorkerError(err)
	}
	rows, err := s.tagRepo.ListForWorker(db, kind, profileID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return tagRowsToDTO(profileID, rows), nil
}

func tagRowsToDTO(profileID uint, rows []repositories.WorkerTagRow) *dto.WorkerTagsResponse {
	resp := &dto.WorkerTagsResponse{
		WorkerID: profileID,
		Tags:     make([]dto.TagResponse, 0, len(rows)),
	}
	for _, row := range rows {
		resp.Tags = append(resp.Tags, dto.TagResponse{ID: row.TagID, Name: row.Name})
	}
	return resp
}

func handleTagError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrDuplicateTagAssociation):
		return apperrors.ErrDuplicateTagAssociation
	default:
		return apperrors.InternalError(err)
	}
}
