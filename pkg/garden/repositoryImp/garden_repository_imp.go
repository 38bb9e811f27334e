package repositoryImp

import (
	"gorm.io/gorm"

	"plot/entities"
	"plot/pkg/garden/repository"
)

type gardenRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.GardenRepository { return &gardenRepo{db} }

func (r *gardenRepo) Create(g *entities.Garden) error { return r.db.Create(g).Error }

func (r *gardenRepo) FindByID(id uint, uid string) (*entities.Garden, error) {
	var g entities.Garden
	if err := r.db.Where("garden_id = ? AND user_id = ?", id, uid).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *gardenRepo) List(uid string) ([]entities.Garden, error) {
	var out []entities.Garden
	if err := r.db.Where("user_id = ?", uid).Order("updated_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *gardenRepo) Save(g *entities.Garden) error { return r.db.Save(g).Error }

func (r *gardenRepo) Delete(id uint, uid string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("garden_id = ? AND user_id = ?", id, uid).Delete(&entities.Garden{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Where("garden_id = ?", id).Delete(&entities.PlantInstance{}).Error; err != nil {
			return err
		}
		return tx.Where("garden_id = ?", id).Delete(&entities.PlantingNote{}).Error
	})
}

func (r *gardenRepo) Instances(gardenID uint) ([]entities.PlantInstance, error) {
	var out []entities.PlantInstance
	if err := r.db.Where("garden_id = ?", gardenID).Order("row ASC, col ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ReplaceInstances rewrites the full instance set for one garden. Always
// called inside Transaction together with the layout save.
func (r *gardenRepo) ReplaceInstances(gardenID uint, rows []entities.PlantInstance) error {
	if err := r.db.Where("garden_id = ?", gardenID).Delete(&entities.PlantInstance{}).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return r.db.Create(&rows).Error
}

func (r *gardenRepo) CreateNote(n *entities.PlantingNote) error { return r.db.Create(n).Error }

func (r *gardenRepo) ListNotes(gardenID uint) ([]entities.PlantingNote, error) {
	var out []entities.PlantingNote
	if err := r.db.Where("garden_id = ?", gardenID).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *gardenRepo) Transaction(fn func(repository.GardenRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&gardenRepo{tx})
	})
}
