package response_models

type RouteSession struct {
	SessionID    string       `json:"session_id"`
	State        string       `json:"state"` // idle | building | calculated | saved
	StartPoint   string       `json:"start_point"`
	Destinations []Attraction `json:"destinations"`
	Totals       *RouteTotals `json:"totals,omitempty"`
}

type RouteTotals struct {
	DistanceKm    float64 `json:"distance_km"`
	TimeByCarMin  float64 `json:"time_by_car_min"`
	TimeByFootMin float64 `json:"time_by_foot_min"`
}

type SavedRoute struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	StartPoint         string       `json:"start_point"`
	Points             []RoutePoint `json:"points"`
	TotalDistanceKm    float64      `json:"total_distance_km"`
	TotalTimeByCarMin  float64      `json:"total_time_by_car_min"`
	TotalTimeByFootMin float64      `json:"total_time_by_foot_min"`
}

type RoutePoint struct {
	Attraction          Attraction `json:"attraction"`
	DistanceToPrevKm    *float64   `json:"distance_to_prev_km"`
	TimeByCarToPrevMin  *float64   `json:"time_by_car_to_prev_min"`
	TimeByFootToPrevMin *float64   `json:"time_by_foot_to_prev_min"`
}
