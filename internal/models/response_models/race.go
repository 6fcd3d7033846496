package response_models

type Race struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Image           string   `json:"image"`
	Date            string   `json:"date"`
	LocationName    string   `json:"location_name"`
	Latitude        float64  `json:"latitude"`
	Longitude       float64  `json:"longitude"`
	DistanceKm      float64  `json:"distance_km"`
	Participants    []string `json:"participants"`
	MaxParticipants int      `json:"max_participants"`
	IsFull          bool     `json:"is_full"`
}
