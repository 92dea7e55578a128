package service

import "github.com/user/flicks/internal/model"

// ReviewService serves the static review data loaded at startup.
type ReviewService struct {
	byMovie map[int64][]model.Review
}

func NewReviewService(byMovie map[int64][]model.Review) *ReviewService {
	return &ReviewService{byMovie: byMovie}
}

// ReviewsFor returns the reviews for a movie, oldest first. Movies without
// reviews get an empty list, not an error.
func (s *ReviewService) ReviewsFor(movieID int64) []model.Review {
	return s.byMovie[movieID]
}
