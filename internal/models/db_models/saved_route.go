package db_models

import "github.com/google/uuid"

type SavedRoute struct {
	BaseModel
	AccountID          uuid.UUID
	Name               string
	StartPoint         string
	TotalDistanceKm    float64
	TotalTimeByCarMin  float64
	TotalTimeByFootMin float64

	Points []RoutePoint `gorm:"foreignKey:RouteID"`
}

// RoutePoint is one leg of a saved route. The *ToPrev fields are nil for
// the first point, matching the saved-route record shape.
type RoutePoint struct {
	BaseModel
	RouteID             uuid.UUID
	Position            int
	AttractionID        uuid.UUID
	DistanceToPrevKm    *float64
	TimeByCarToPrevMin  *float64
	TimeByFootToPrevMin *float64

	Attraction Attraction `gorm:"foreignKey:AttractionID"`
}
