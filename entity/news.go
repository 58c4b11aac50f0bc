package entity

import (
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// NewsSource is an RSS feed the news endpoint aggregates
type NewsSource struct {
	ID           int            `gorm:"primaryKey" json:"id"`
	URL          string         `json:"url"`
	Lang         string         `json:"lang"`
	BlockedWords pq.StringArray `gorm:"type:text[]" json:"-"`
}

// Blocked reports whether the item text contains a blocked word
func (s NewsSource) Blocked(text string) bool {
	lowered := strings.ToLower(text)
	for _, word := range s.BlockedWords {
		if word != "" && strings.Contains(lowered, strings.ToLower(word)) {
			return true
		}
	}
	return false
}

// ListNewsSources returns all configured feed sources
func ListNewsSources(db *gorm.DB) ([]NewsSource, error) {
	var sources []NewsSource
	if err := db.Find(&sources).Error; err != nil {
		return nil, err
	}
	return sources, nil
}
