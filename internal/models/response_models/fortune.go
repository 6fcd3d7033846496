package response_models

type ScanSession struct {
	SessionID  string `json:"session_id"`
	Stage      string `json:"stage"` // ready | scanning | scanned
	ScanResult string `json:"scan_result,omitempty"`
}

type FortunePrediction struct {
	SuggestedAttraction Attraction `json:"suggested_attraction"`
	MoonPhase           string     `json:"moon_phase"`
	Horoscope           string     `json:"horoscope"`
	BirthYear           int        `json:"birth_year"`
}
