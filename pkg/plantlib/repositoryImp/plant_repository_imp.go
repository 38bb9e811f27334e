package repositoryImp

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"plot/entities"
	"plot/pkg/plantlib/repository"
)

type plantRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlantRepository { return &plantRepo{db} }

func (r *plantRepo) All() ([]entities.Plant, error) {
	var out []entities.Plant
	if err := r.db.Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *plantRepo) FindByName(name string) (*entities.Plant, error) {
	var p entities.Plant
	if err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *plantRepo) Create(p *entities.Plant) error { return r.db.Create(p).Error }

// Upsert keys on the unique plant name so re-importing a sheet refreshes
// timing data instead of failing.
func (r *plantRepo) Upsert(p *entities.Plant) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		UpdateAll: true,
	}).Create(p).Error
}

func (r *plantRepo) Delete(id uint) error {
	res := r.db.Delete(&entities.Plant{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
