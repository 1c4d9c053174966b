package dto

// TagResponse - элемент справочника тегов
type TagResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ReplaceWorkerTagsRequest - полная замена тегов профиля одного вида
type ReplaceWorkerTagsRequest struct {
	TagIDs []uint `json:"tag_ids" validate:"required"`
}

// WorkerTagsResponse - теги профиля после изменения или выборки
type WorkerTagsResponse struct {
	WorkerID uint          `json:"worker_id"`
	Tags     []TagResponse `json:"tags"`
}
