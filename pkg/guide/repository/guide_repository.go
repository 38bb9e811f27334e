package repository

import "plot/entities"

type GuideRepository interface {
	CreateDoc(*entities.GuideDoc) error
	BulkInsertChunks([]entities.GuideChunk) error
	ListDocs() ([]entities.GuideDoc, error)
	AllChunks() ([]entities.GuideChunk, error)
	DocsByIDs(ids []uint) (map[uint]entities.GuideDoc, error)
}
