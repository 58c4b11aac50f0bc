package service

import (
	"gorm.io/gorm"

	"rockrev/config"
	"rockrev/entity"
)

// Home builds the aggregated read-only home view
type Home struct {
	db     *gorm.DB
	titles *Titles
}

// NewHome makes the home view service
func NewHome(conn *gorm.DB, titles *Titles) *Home {
	return &Home{db: conn, titles: titles}
}

// HomePage is the aggregated landing payload; latest titles carry no nested
// review list
type HomePage struct {
	Info          map[string]string          `json:"info"`
	PopularBands  []entity.BandWithFollowers `json:"popular_bands"`
	LatestReviews []ReviewRead               `json:"latest_reviews"`
	LatestTitles  []TitleRead                `json:"latest_titles"`
}

// Build assembles the home page
func (s *Home) Build() (*HomePage, error) {
	bands, err := entity.PopularBands(s.db, config.HomePageLimit)
	if err != nil {
		return nil, err
	}
	reviews, err := entity.LatestReviews(s.db, config.HomePageLimit)
	if err != nil {
		return nil, err
	}
	var latest []entity.Title
	err = s.db.Preload("Bands").Preload("SubGenres").
		Order("id DESC").Limit(config.HomePageLimit).Find(&latest).Error
	if err != nil {
		return nil, err
	}
	titles := make([]TitleRead, 0, len(latest))
	for _, title := range latest {
		read, err := s.titles.attachScore(title)
		if err != nil {
			return nil, err
		}
		titles = append(titles, *read)
	}
	return &HomePage{
		Info:          map[string]string{"name": "rockrev", "about": "music catalog and reviews"},
		PopularBands:  bands,
		LatestReviews: ReadReviews(reviews),
		LatestTitles:  titles,
	}, nil
}
