package services

import (
	"flexygig/internal/repositories"
	"flexygig/internal/services/dto"
	"flexygig/pkg/apperrors"

	"gorm.io/gorm"
)

// SearchService - поиск worker- и business-аккаунтов по имени, городу и тегам.
type SearchService interface {
	SearchUsers(db *gorm.DB, req *dto.SearchUsersRequest) (*dto.SearchUsersResponse, error)
	ListAllWorkers(db *gorm.DB) ([]dto.WorkerProfileResponse, error)
}

type SearchServiceImpl struct {
	searchRepo repositories.SearchRepository
	workerRepo repositories.WorkerRepository
}

func NewSearchService(searchRepo repositories.SearchRepository, workerRepo repositories.WorkerRepository) SearchService {
	return &SearchServiceImpl{
		searchRepo: searchRepo,
		workerRepo: workerRepo,
	}
}

func (s *SearchServiceImpl) SearchUsers(db *gorm.DB, req *dto.SearchUsersRequest) (*dto.SearchUsersResponse, error) {
	page := req.Page
	if page <= 0 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	filters := repositories.SearchFilters{
		Query:      req.Query,
		City:       req.City,
		Skill:      req.Skill,
		Trait:      req.Trait,
		Experience: req.Experience,
		Limit:      pageSize,
		Offset:     (page - 1) * pageSize,
	}

	rows, err := s.searchRepo.SearchUsers(db, filters)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.SearchUsersResponse{
		Results:  make([]dto.SearchUserResult, 0, len(rows)),
		Page:     page,
		PageSize: pageSize,
	}
	for i := range rows {
		row := &rows[i]
		skills, traits, experiences := row.Tags()
		resp.Results = append(resp.Results, dto.SearchUserResult{
			UserID:      row.UserID,
			IsBusiness:  row.IsBusiness,
			UserImage:   row.UserImage,
			City:        row.City,
			Province:    row.Province,
			WorkerID:    row.WorkerID,
			FirstName:   row.FirstName,
			LastName:    row.LastName,
			ProfileName: row.ProfileName,
			RoleName:    row.RoleName,
			IsPrimary:   row.IsPrimary,
			Skills:      skills,
			Traits:      traits,
			Experiences: experiences,

			BusinessName:        row.BusinessName,
			BusinessDescription: row.BusinessDescription,
		})
	}
	return resp, nil
}

// ListAllWorkers - плоский список всех профилей (каталог).
func (s *SearchServiceImpl) ListAllWorkers(db *gorm.DB) ([]dto.WorkerProfileResponse, error) {
	profiles, err := s.workerRepo.ListAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := make([]dto.WorkerProfileResponse, 0, len(profiles))
	for i := range profiles {
		resp = append(resp, *workerProfileToDTO(&profiles[i]))
	}
	return resp, nil
}
