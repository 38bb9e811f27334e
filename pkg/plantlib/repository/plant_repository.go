package repository

import "plot/entities"

type PlantRepository interface {
	All() ([]entities.Plant, error)
	FindByName(name string) (*entities.Plant, error)
	Create(p *entities.Plant) error
	Upsert(p *entities.Plant) error
	Delete(id uint) error
}
