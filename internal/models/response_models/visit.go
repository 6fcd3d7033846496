package response_models

type VisitInfo struct {
	AttractionID string `json:"attraction_id"`
	Visited      bool   `json:"visited"`
	VisitDate    string `json:"visit_date,omitempty"`
	HasRated     bool   `json:"has_rated"`
	HasUploaded  bool   `json:"has_uploaded"`

	// CanRate is false once the attraction has any review, regardless of
	// author. There is no per-author check, the app has a single-user
	// identity model.
	CanRate bool `json:"can_rate"`
}

type Review struct {
	ID           string `json:"id"`
	AttractionID string `json:"attraction_id"`
	UserName     string `json:"user_name"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	Date         string `json:"date"`
}

type UploadedImage struct {
	ID           string `json:"id"`
	AttractionID string `json:"attraction_id"`
	URL          string `json:"url"`
	UploadDate   string `json:"upload_date"`
}
