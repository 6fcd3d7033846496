package db_models

type Attraction struct {
	BaseModel
	Name        string
	Description string
	Image       string
	Latitude    float64
	Longitude   float64
	Address     string
	Rating      float64
	Category    string
}
