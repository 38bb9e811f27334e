package repositoryImp

import (
	"gorm.io/gorm"

	"plot/entities"
	"plot/pkg/guide/repository"
)

type guideRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.GuideRepository { return &guideRepo{db} }

func (r *guideRepo) CreateDoc(d *entities.GuideDoc) error { return r.db.Create(d).Error }

func (r *guideRepo) BulkInsertChunks(rows []entities.GuideChunk) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.Create(&rows).Error
}

func (r *guideRepo) ListDocs() ([]entities.GuideDoc, error) {
	var out []entities.GuideDoc
	if err := r.db.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *guideRepo) AllChunks() ([]entities.GuideChunk, error) {
	var out []entities.GuideChunk
	if err := r.db.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *guideRepo) DocsByIDs(ids []uint) (map[uint]entities.GuideDoc, error) {
	out := map[uint]entities.GuideDoc{}
	if len(ids) == 0 {
		return out, nil
	}
	var docs []entities.GuideDoc
	if err := r.db.Where("doc_id IN ?", ids).Find(&docs).Error; err != nil {
		return nil, err
	}
	for _, d := range docs {
		out[d.DocID] = d
	}
	return out, nil
}
