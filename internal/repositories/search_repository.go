package repositories

import (
	"strings"

	"gorm.io/gorm"
)

// SearchFilters - параметры поиска аккаунтов.
type SearchFilters struct {
	Query      string
	City       string
	Skill      string
	Trait      string
	Experience string
	Limit      int
	Offset     int
}

// SearchResultRow - одна строка выдачи поиска. Строка описывает либо
// worker-профиль (worker-поля заполнены), либо business-аккаунт
// (business-поля заполнены); worker с несколькими профилями даёт
// несколько строк.
type SearchResultRow struct {
	UserID     uint    `json:"user_id"`
	IsBusiness bool    `json:"is_business"`
	UserImage  string  `json:"user_image"`
	City       *string `json:"city"`
	Province   *string `json:"province"`

	WorkerID    *uint   `json:"worker_id"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	ProfileName *string `json:"profile_name"`
	RoleName    *string `json:"role_name"`
	IsPrimary   *bool   `json:"is_primary"`

	BusinessName        *string `json:"business_name"`
	BusinessDescription *string `json:"business_description"`

	SkillsAgg      string `json:"-"`
	TraitsAgg      string `json:"-"`
	ExperiencesAgg string `json:"-"`
}

// Tags разбирает агрегированные string_agg-колонки на срезы имён.
func (r *SearchResultRow) Tags() (skills, traits, experiences []string) {
	return splitAgg(r.SkillsAgg), splitAgg(r.TraitsAgg), splitAgg(r.ExperiencesAgg)
}

func splitAgg(agg string) []string {
	if agg == "" {
		return []string{}
	}
	return strings.Split(agg, ",")
}

// SearchRepository исполняет join-тяжёлый поисковый запрос по аккаунтам.
// Запрос опирается на ILIKE и string_agg, поэтому требует PostgreSQL.
type SearchRepository interface {
	SearchUsers(db *gorm.DB, filters SearchFilters) ([]SearchResultRow, error)
}

type SearchRepositoryImpl struct{}

func NewSearchRepository() SearchRepository {
	return &SearchRepositoryImpl{}
}

func (r *SearchRepositoryImpl) SearchUsers(db *gorm.DB, filters SearchFilters) ([]SearchResultRow, error) {
	// невидимы до подтверждения email
	conditions := []string{"u.active = TRUE"}
	var args []interface{}

	if filters.Query != "" {
		conditions = append(conditions,
			"(w.first_name ILIKE ? OR w.last_name ILIKE ? OR w.profile_name ILIKE ? OR w.role_name ILIKE ? OR b.business_name ILIKE ?)")
		pattern := "%" + filters.Query + "%"
		args = append(args, pattern, pattern, pattern, pattern, pattern)
	}
	if filters.City != "" {
		conditions = append(conditions, "l.city ILIKE ?")
		args = append(args, "%"+filters.City+"%")
	}
	// Фильтры по тегам идут через EXISTS, а не через внешние join'ы:
	// условие в WHERE обрезало бы string_agg до совпавших строк.
	if filters.Skill != "" {
		conditions = append(conditions,
			"EXISTS (SELECT 1 FROM workers_skills fs INNER JOIN skills fsn ON fsn.skill_id = fs.skill_id WHERE fs.workers_id = w.id AND fsn.skill_name ILIKE ?)")
		args = append(args, "%"+filters.Skill+"%")
	}
	if filters.Trait != "" {
		conditions = append(conditions,
			"EXISTS (SELECT 1 FROM workers_traits ft INNER JOIN traits ftn ON ftn.trait_id = ft.trait_id WHERE ft.workers_id = w.id AND ftn.trait_name ILIKE ?)")
		args = append(args, "%"+filters.Trait+"%")
	}
	if filters.Experience != "" {
		conditions = append(conditions,
			"EXISTS (SELECT 1 FROM workers_experiences fe INNER JOIN experiences fen ON fen.experience_id = fe.experience_id WHERE fe.workers_id = w.id AND fen.experience_name ILIKE ?)")
		args = append(args, "%"+filters.Experience+"%")
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	limit := filters.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit, offset)

	query := `
		SELECT
			u.id AS user_id,
			u.is_business,
			u.user_image,
			l.city,
			l.province,
			w.id AS worker_id,
			w.first_name,
			w.last_name,
			w.profile_name,
			w.role_name,
			w.is_primary,
			b.business_name,
			b.business_description,
			COALESCE(string_agg(DISTINCT s.skill_name, ','), '') AS skills_agg,
			COALESCE(string_agg(DISTINCT t.trait_name, ','), '') AS traits_agg,
			COALESCE(string_agg(DISTINCT e.experience_name, ','), '') AS experiences_agg
		FROM users u
		LEFT JOIN locations l ON l.id = u.location_id
		LEFT JOIN workers w ON w.user_id = u.id
		LEFT JOIN businesses b ON b.user_id = u.id
		LEFT JOIN workers_skills ws ON ws.workers_id = w.id
		LEFT JOIN skills s ON s.skill_id = ws.skill_id
		LEFT JOIN workers_traits wt ON wt.workers_id = w.id
		LEFT JOIN traits t ON t.trait_id = wt.trait_id
		LEFT JOIN workers_experiences we ON we.workers_id = w.id
		LEFT JOIN experiences e ON e.experience_id = we.experience_id
		` + where + `
		GROUP BY u.id, u.is_business, u.user_image, l.city, l.province,
			w.id, w.first_name, w.last_name, w.profile_name, w.role_name,
			w.is_primary, w.created_at, b.business_name, b.business_description
		ORDER BY COALESCE(w.is_primary, FALSE) DESC, w.created_at ASC, w.id ASC, u.id ASC
		LIMIT ? OFFSET ?`

	var rows []SearchResultRow
	err := db.Raw(query, args...).Scan(&rows).Error
	return rows, err
}
