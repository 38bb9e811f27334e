package repository

import "plot/entities"

type ProfileRepository interface {
	Get(uid string) (*entities.UserProfile, error)
	Upsert(p *entities.UserProfile) error
	Zones() ([]entities.ClimateZone, error)
	Zone(code string) (*entities.ClimateZone, error)
}
