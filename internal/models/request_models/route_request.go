package request_models

type RouteDestinationRequest struct {
	AttractionID string `json:"attraction_id" binding:"required,uuid4"`
}

type SaveRouteRequest struct {
	Name string `json:"name"`
}
