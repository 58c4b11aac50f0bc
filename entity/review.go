package entity

import (
	"time"

	"gorm.io/gorm"
)

// Review is a scored text review, at most one per (author, title)
type Review struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Text     string    `gorm:"size:500" json:"text"`
	AuthorID uint      `gorm:"uniqueIndex:author_title_unique" json:"-"`
	Author   User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Score    int       `json:"score"`
	PubDate  time.Time `gorm:"autoCreateTime" json:"pub_date"`
	TitleID  *uint     `gorm:"uniqueIndex:author_title_unique" json:"title_id"`
	Title    *Title    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

// Comment is a comment on a review
type Comment struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Text     string    `json:"text"`
	AuthorID uint      `json:"-"`
	Author   User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	PubDate  time.Time `gorm:"autoCreateTime" json:"pub_date"`
	ReviewID *uint     `json:"review_id"`
	Review   *Review   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

// ReviewExists reports whether the author already reviewed the title
func ReviewExists(db *gorm.DB, authorID, titleID uint) (bool, error) {
	var count int64
	err := db.Model(&Review{}).Where("author_id = ? AND title_id = ?", authorID, titleID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListReviewsByTitle returns reviews of a title, newest first
func ListReviewsByTitle(db *gorm.DB, titleID uint) ([]Review, error) {
	var reviews []Review
	err := db.Preload("Author").Where("title_id = ?", titleID).Order("id DESC").Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// LatestReviews returns the most recent reviews across all titles
func LatestReviews(db *gorm.DB, limit int) ([]Review, error) {
	var reviews []Review
	err := db.Preload("Author").Order("id DESC").Limit(limit).Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
