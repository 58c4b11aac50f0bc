package service

import (
	"errors"

	"gorm.io/gorm"

	"rockrev/entity"
)

// Comments handles comments under reviews
type Comments struct {
	db *gorm.DB
}

// NewComments makes the comment service
func NewComments(conn *gorm.DB) *Comments {
	return &Comments{db: conn}
}

// Create adds a comment to a review
func (s *Comments) Create(authorID, reviewID uint, text string) (*entity.Comment, error) {
	if text == "" {
		return nil, &ValidationError{Reason: "text is required"}
	}
	var review entity.Review
	if err := s.db.First(&review, reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "review"}
		}
		return nil, err
	}
	comment := entity.Comment{Text: text, AuthorID: authorID, ReviewID: &reviewID}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// Delete removes a comment, author or staff only
func (s *Comments) Delete(actor entity.User, commentID uint) error {
	var comment entity.Comment
	if err := s.db.First(&comment, commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "comment"}
		}
		return err
	}
	if comment.AuthorID != actor.ID && !actor.IsStaff {
		return &PermissionError{Reason: "only the author or staff may delete a comment"}
	}
	return s.db.Delete(&comment).Error
}

// ListByReview returns the comments of a review, newest first
func (s *Comments) ListByReview(reviewID uint) ([]entity.Comment, error) {
	var review entity.Review
	if err := s.db.First(&review, reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "review"}
		}
		return nil, err
	}
	var comments []entity.Comment
	if err := s.db.Where("review_id = ?", reviewID).Order("id DESC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
