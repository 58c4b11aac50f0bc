package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"rockrev/entity"
)

// Reviews enforces the one-review-per-(author,title) rule and score bounds
type Reviews struct {
	db *gorm.DB
}

// NewReviews makes the review service
func NewReviews(conn *gorm.DB) *Reviews {
	return &Reviews{db: conn}
}

// ReviewInput is a review create/update payload
type ReviewInput struct {
	Text  string `json:"text"`
	Score int    `json:"score"`
}

// ReviewRead is a review with its author's username attached
type ReviewRead struct {
	ID      uint      `json:"id"`
	Author  string    `json:"author"`
	Text    string    `json:"text"`
	Score   int       `json:"score"`
	PubDate time.Time `json:"pub_date"`
	TitleID *uint     `json:"title_id"`
}

// ReadReviews maps reviews with preloaded authors to their read form
func ReadReviews(reviews []entity.Review) []ReviewRead {
	reads := make([]ReviewRead, 0, len(reviews))
	for _, review := range reviews {
		reads = append(reads, ReviewRead{
			ID:      review.ID,
			Author:  review.Author.Username,
			Text:    review.Text,
			Score:   review.Score,
			PubDate: review.PubDate,
			TitleID: review.TitleID,
		})
	}
	return reads
}

func validateScore(score int) error {
	if score < 1 || score > 10 {
		return &ValidationError{Reason: "score must be between 1 and 10"}
	}
	return nil
}

// Create adds a review for a title. The duplicate pre-check runs before the
// insert; the unique index backstops the race.
func (s *Reviews) Create(authorID, titleID uint, input ReviewInput) (*entity.Review, error) {
	if err := validateScore(input.Score); err != nil {
		return nil, err
	}
	var title entity.Title
	if err := s.db.First(&title, titleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "title"}
		}
		return nil, err
	}
	exists, err := entity.ReviewExists(s.db, authorID, titleID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &ValidationError{Reason: "you have already reviewed this title"}
	}
	review := entity.Review{
		Text:     input.Text,
		Score:    input.Score,
		AuthorID: authorID,
		TitleID:  &titleID,
	}
	if err := s.db.Create(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ValidationError{Reason: "you have already reviewed this title"}
		}
		return nil, err
	}
	review.Title = &title
	return &review, nil
}

// Update changes text and score, author or staff only
func (s *Reviews) Update(actor entity.User, reviewID uint, input ReviewInput) (*entity.Review, error) {
	if err := validateScore(input.Score); err != nil {
		return nil, err
	}
	var review entity.Review
	if err := s.db.First(&review, reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "review"}
		}
		return nil, err
	}
	if review.AuthorID != actor.ID && !actor.IsStaff {
		return nil, &PermissionError{Reason: "only the author or staff may edit a review"}
	}
	fields := map[string]interface{}{"text": input.Text, "score": input.Score}
	if err := s.db.Model(&review).Updates(fields).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// Delete removes a review, author or staff only
func (s *Reviews) Delete(actor entity.User, reviewID uint) error {
	var review entity.Review
	if err := s.db.First(&review, reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "review"}
		}
		return err
	}
	if review.AuthorID != actor.ID && !actor.IsStaff {
		return &PermissionError{Reason: "only the author or staff may delete a review"}
	}
	return s.db.Delete(&review).Error
}

// ListByTitle returns the reviews of a title, newest first, with author
// usernames attached
func (s *Reviews) ListByTitle(titleID uint) ([]ReviewRead, error) {
	var title entity.Title
	if err := s.db.First(&title, titleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "title"}
		}
		return nil, err
	}
	reviews, err := entity.ListReviewsByTitle(s.db, titleID)
	if err != nil {
		return nil, err
	}
	return ReadReviews(reviews), nil
}
