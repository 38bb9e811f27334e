package repository

import "plot/entities"

// GardenRepository persists gardens, their per-cell instances, and
// journal notes. Transaction runs fn against a repository bound to one
// transaction; grid mutations go through it so a garden's layout and
// instance rows always change as one unit.
type GardenRepository interface {
	Create(g *entities.Garden) error
	FindByID(id uint, uid string) (*entities.Garden, error)
	List(uid string) ([]entities.Garden, error)
	Save(g *entities.Garden) error
	Delete(id uint, uid string) error

	Instances(gardenID uint) ([]entities.PlantInstance, error)
	ReplaceInstances(gardenID uint, rows []entities.PlantInstance) error

	CreateNote(n *entities.PlantingNote) error
	ListNotes(gardenID uint) ([]entities.PlantingNote, error)

	Transaction(fn func(GardenRepository) error) error
}
