package repositoryImp

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"plot/entities"
	"plot/pkg/profile/repository"
)

type profileRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ProfileRepository { return &profileRepo{db} }

func (r *profileRepo) Get(uid string) (*entities.UserProfile, error) {
	var p entities.UserProfile
	if err := r.db.Where("user_id = ?", uid).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) Upsert(p *entities.UserProfile) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(p).Error
}

func (r *profileRepo) Zones() ([]entities.ClimateZone, error) {
	var out []entities.ClimateZone
	if err := r.db.Order("zone ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *profileRepo) Zone(code string) (*entities.ClimateZone, error) {
	var z entities.ClimateZone
	if err := r.db.Where("zone = ?", code).First(&z).Error; err != nil {
		return nil, err
	}
	return &z, nil
}
