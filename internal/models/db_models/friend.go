package db_models

type Friend struct {
	BaseModel
	Name   string
	Avatar string
	Status string // "online" or "offline"
}
