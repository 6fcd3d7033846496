package request_models

type CreateReviewRequest struct {
	UserName string `json:"user_name"`
	Rating   int    `json:"rating" binding:"required"`
	Comment  string `json:"comment"`
}

type UploadImagesRequest struct {
	ImageURLs []string `json:"image_urls" binding:"required,min=1"`
}
