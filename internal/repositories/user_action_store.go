package repositories

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// VisitRecord tracks what the current user has done with one attraction.
// At most one record exists per attraction.
type VisitRecord struct {
	AttractionID string
	VisitDate    time.Time
	HasRated     bool
	HasUploaded  bool
}

type Review struct {
	ID           string
	AttractionID string
	UserName     string
	Rating       int
	Comment      string
	Date         time.Time
}

type UploadedImage struct {
	ID           string
	AttractionID string
	URL          string
	UploadDate   time.Time
}

// UserActionStore is the single source of truth for visit registrations,
// authored reviews and uploaded images. It lives entirely in memory and its
// operations never fail; validation (rating range and the logged-in check)
// belongs to the calling layer.
type UserActionStore interface {
	// RegisterVisit creates or overwrites the visit record for the
	// attraction, resetting HasRated and HasUploaded to false.
	RegisterVisit(attractionID string)
	HasVisited(attractionID string) bool
	// GetVisitInfo returns a copy of the record, or nil if none exists.
	GetVisitInfo(attractionID string) *VisitRecord

	// AddReview appends a review and marks the visit record as rated if one
	// exists. It never creates a visit record; a review for an unvisited
	// attraction is accepted and kept, with no flag to flip.
	AddReview(attractionID, userName string, rating int, comment string) Review
	GetReviewsForAttraction(attractionID string) []Review

	AddUploadedImage(attractionID, url string) UploadedImage
	GetImagesForAttraction(attractionID string) []UploadedImage
}

type userActionStore struct {
	mu      sync.RWMutex
	visited map[string]VisitRecord
	reviews []Review
	images  []UploadedImage
}

func NewUserActionStore() UserActionStore {
	return &userActionStore{
		visited: make(map[string]VisitRecord),
	}
}

func (s *userActionStore) RegisterVisit(attractionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.visited[attractionID] = VisitRecord{
		AttractionID: attractionID,
		VisitDate:    time.Now(),
		HasRated:     false,
		HasUploaded:  false,
	}
}

func (s *userActionStore) HasVisited(attractionID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.visited[attractionID]
	return ok
}

func (s *userActionStore) GetVisitInfo(attractionID string) *VisitRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.visited[attractionID]
	if !ok {
		return nil
	}
	return &record
}

func (s *userActionStore) AddReview(attractionID, userName string, rating int, comment string) Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	review := Review{
		ID:           uuid.New().String(),
		AttractionID: attractionID,
		UserName:     userName,
		Rating:       rating,
		Comment:      comment,
		Date:         time.Now(),
	}
	s.reviews = append(s.reviews, review)
	s.markRated(attractionID)
	return review
}

func (s *userActionStore) GetReviewsForAttraction(attractionID string) []Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []Review{}
	for _, review := range s.reviews {
		if review.AttractionID == attractionID {
			out = append(out, review)
		}
	}
	return out
}

func (s *userActionStore) AddUploadedImage(attractionID, url string) UploadedImage {
	s.mu.Lock()
	defer s.mu.Unlock()

	image := UploadedImage{
		ID:           uuid.New().String(),
		AttractionID: attractionID,
		URL:          url,
		UploadDate:   time.Now(),
	}
	s.images = append(s.images, image)
	s.markUploaded(attractionID)
	return image
}

func (s *userActionStore) GetImagesForAttraction(attractionID string) []UploadedImage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []UploadedImage{}
	for _, image := range s.images {
		if image.AttractionID == attractionID {
			out = append(out, image)
		}
	}
	return out
}

// callers hold s.mu
func (s *userActionStore) markRated(attractionID string) {
	if record, ok := s.visited[attractionID]; ok {
		record.HasRated = true
		s.visited[attractionID] = record
	}
}

func (s *userActionStore) markUploaded(attractionID string) {
	if record, ok := s.visited[attractionID]; ok {
		record.HasUploaded = true
		s.visited[attractionID] = record
	}
}
