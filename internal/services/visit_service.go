package services

import (
	"context"
	"log"

	"keliauk/internal/models/request_models"
	"keliauk/internal/models/response_models"
	"keliauk/internal/repositories"
	"keliauk/pkg/utils"
)

// defaultReviewAuthor is the placeholder identity attached to reviews when
// the caller does not supply a name.
const defaultReviewAuthor = "Jonas P."

// VisitService drives the attraction detail flow: register a visit, rate the
// place, upload photos. Input validation happens here; the underlying store
// accepts whatever it is given and cannot fail.
type VisitServiceInterface interface {
	RegisterVisit(ctx context.Context, attractionID string) (*response_models.VisitInfo, error)
	GetVisitInfo(ctx context.Context, attractionID string) (*response_models.VisitInfo, error)
	AddReview(ctx context.Context, attractionID string, request request_models.CreateReviewRequest) (*response_models.Review, error)
	GetReviews(ctx context.Context, attractionID string) ([]response_models.Review, error)
	AddImages(ctx context.Context, attractionID string, imageURLs []string) ([]response_models.UploadedImage, error)
	GetImages(ctx context.Context, attractionID string) ([]response_models.UploadedImage, error)
}

type VisitService struct {
	actions        repositories.UserActionStore
	attractionRepo repositories.AttractionRepository
}

func NewVisitService(actions repositories.UserActionStore, attractionRepo repositories.AttractionRepository) VisitServiceInterface {
	return &VisitService{
		actions:        actions,
		attractionRepo: attractionRepo,
	}
}

func (v *VisitService) RegisterVisit(ctx context.Context, attractionID string) (*response_models.VisitInfo, error) {
	if err := v.checkAttraction(ctx, attractionID); err != nil {
		return nil, err
	}

	// Re-registering overwrites the record and resets both flags; callers
	// are expected not to offer the action twice.
	v.actions.RegisterVisit(attractionID)
	return v.visitInfo(attractionID), nil
}

func (v *VisitService) GetVisitInfo(ctx context.Context, attractionID string) (*response_models.VisitInfo, error) {
	if err := v.checkAttraction(ctx, attractionID); err != nil {
		return nil, err
	}
	return v.visitInfo(attractionID), nil
}

func (v *VisitService) AddReview(ctx context.Context, attractionID string, request request_models.CreateReviewRequest) (*response_models.Review, error) {
	if request.Rating < 1 || request.Rating > 5 {
		return nil, utils.ErrInvalidRating
	}
	if err := v.checkAttraction(ctx, attractionID); err != nil {
		return nil, err
	}

	userName := request.UserName
	if userName == "" {
		userName = defaultReviewAuthor
	}

	// The store flips HasRated only when a visit record already exists; a
	// review without a prior visit registration is still kept.
	review := v.actions.AddReview(attractionID, userName, request.Rating, request.Comment)
	out := toReviewResponse(review)
	return &out, nil
}

func (v *VisitService) GetReviews(ctx context.Context, attractionID string) ([]response_models.Review, error) {
	if err := v.checkAttraction(ctx, attractionID); err != nil {
		return nil, err
	}

	reviews := v.actions.GetReviewsForAttraction(attractionID)
	out := make([]response_models.Review, 0, len(reviews))
	for _, review := range reviews {
		out = append(out, toReviewResponse(review))
	}
	return out, nil
}

func (v *VisitService) AddImages(ctx context.Context, attractionID string, imageURLs []string) ([]response_models.UploadedImage, error) {
	if len(imageURLs) == 0 {
		return nil, utils.ErrInvalidInput
	}
	if err := v.checkAttraction(ctx, attractionID); err != nil {
		return nil, err
	}

	out := make([]response_models.UploadedImage, 0, len(imageURLs))
	for _, url := range imageURLs {
		image := v.actions.AddUploadedImage(attractionID, url)
		out = append(out, toImageResponse(image))
	}
	return out, nil
}

func (v *VisitService) GetImages(ctx context.Context, attractionID string) ([]response_models.UploadedImage, error) {
	if err := v.checkAttraction(ctx, attractionID); err != nil {
		return nil, err
	}

	images := v.actions.GetImagesForAttraction(attractionID)
	out := make([]response_models.UploadedImage, 0, len(images))
	for _, image := range images {
		out = append(out, toImageResponse(image))
	}
	return out, nil
}

func (v *VisitService) checkAttraction(ctx context.Context, attractionID string) error {
	attraction, err := v.attractionRepo.GetByID(ctx, attractionID)
	if err != nil {
		log.Printf("Error fetching attraction: %v", err)
		return utils.ErrDatabaseError
	}
	if attraction == nil {
		return utils.ErrAttractionNotFound
	}
	return nil
}

func (v *VisitService) visitInfo(attractionID string) *response_models.VisitInfo {
	info := &response_models.VisitInfo{
		AttractionID: attractionID,
		// Any review hides the rating action, not just the current
		// user's. Single-user assumption, kept on purpose.
		CanRate: len(v.actions.GetReviewsForAttraction(attractionID)) == 0,
	}

	record := v.actions.GetVisitInfo(attractionID)
	if record == nil {
		return info
	}

	info.Visited = true
	info.VisitDate = utils.FormatRFC3339LT(record.VisitDate)
	info.HasRated = record.HasRated
	info.HasUploaded = record.HasUploaded
	return info
}

func toReviewResponse(review repositories.Review) response_models.Review {
	return response_models.Review{
		ID:           review.ID,
		AttractionID: review.AttractionID,
		UserName:     review.UserName,
		Rating:       review.Rating,
		Comment:      review.Comment,
		Date:         utils.FormatRFC3339LT(review.Date),
	}
}

func toImageResponse(image repositories.UploadedImage) response_models.UploadedImage {
	return response_models.UploadedImage{
		ID:           image.ID,
		AttractionID: image.AttractionID,
		URL:          image.URL,
		UploadDate:   utils.FormatRFC3339LT(image.UploadDate),
	}
}
