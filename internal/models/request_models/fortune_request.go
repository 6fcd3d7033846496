package request_models

type FortunePredictRequest struct {
	MoonPhase string `json:"moon_phase" binding:"required"`
	Horoscope string `json:"horoscope" binding:"required"`
	BirthYear int    `json:"birth_year" binding:"required,min=1900,max=2025"`
}
