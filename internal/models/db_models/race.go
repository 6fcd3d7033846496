package db_models

import (
	"time"

	"github.com/lib/pq"
)

type Race struct {
	BaseModel
	Name            string
	Description     string
	Image           string
	Date            time.Time
	LocationName    string
	Latitude        float64
	Longitude       float64
	DistanceKm      float64
	Participants    pq.StringArray `gorm:"type:text[]"`
	MaxParticipants int
}
