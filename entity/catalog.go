// Package entity describes the persisted catalog models
package entity

import (
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SubGenre is a tag entity, canonicalized by lowercase name
type SubGenre struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50;uniqueIndex" json:"name"`
}

// Band is a musical act, canonicalized by lowercase name
type Band struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;uniqueIndex" json:"name"`
	Image       string `json:"image"`
	Description string `gorm:"size:550" json:"description"`
}

// Title is a catalogued music item with band and subgenre associations
type Title struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"size:100" json:"name"`
	Year      int        `json:"year"`
	Text      string     `gorm:"size:550" json:"text"`
	SubGenres []SubGenre `gorm:"many2many:title_subgenres;constraint:OnDelete:CASCADE;" json:"subgenre"`
	Bands     []Band     `gorm:"many2many:title_bands;constraint:OnDelete:CASCADE;" json:"band"`
}

// UpsertBand inserts a band, keeping the existing row on a name conflict.
// A conflict is not an error, so the surrounding transaction stays usable
// and the caller can look the winner up. RowsAffected is 0 on conflict.
func UpsertBand(db *gorm.DB, band *Band) *gorm.DB {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(band)
}

// UpsertSubGenre inserts a subgenre with the same conflict policy as UpsertBand
func UpsertSubGenre(db *gorm.DB, subgenre *SubGenre) *gorm.DB {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(subgenre)
}

// GetTitleByID returns a title with its associations preloaded
func GetTitleByID(db *gorm.DB, titleID uint) (*Title, error) {
	var title Title
	if err := db.Preload("Bands").Preload("SubGenres").First(&title, titleID).Error; err != nil {
		return nil, err
	}
	return &title, nil
}

// AvgScore returns the mean review score of a title, nil when it has no reviews
func AvgScore(db *gorm.DB, titleID uint) (*float64, error) {
	var avg sql.NullFloat64
	err := db.Model(&Review{}).Where("title_id = ?", titleID).Select("AVG(score)").Scan(&avg).Error
	if err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	value := avg.Float64
	return &value, nil
}

// TitleFilter narrows the title listing
type TitleFilter struct {
	Name     string
	Year     int
	Band     string
	SubGenre string
}

// ListTitles returns titles newest first, optionally filtered
func ListTitles(db *gorm.DB, filter TitleFilter) ([]Title, error) {
	query := db.Model(&Title{}).Preload("Bands").Preload("SubGenres")
	if filter.Name != "" {
		query = query.Where("titles.name LIKE ?", "%"+filter.Name+"%")
	}
	if filter.Year != 0 {
		query = query.Where("titles.year = ?", filter.Year)
	}
	if filter.Band != "" {
		query = query.
			Joins("JOIN title_bands ON title_bands.title_id = titles.id").
			Joins("JOIN bands ON bands.id = title_bands.band_id").
			Where("bands.name = ?", filter.Band)
	}
	if filter.SubGenre != "" {
		query = query.
			Joins("JOIN title_subgenres ON title_subgenres.title_id = titles.id").
			Joins("JOIN sub_genres ON sub_genres.id = title_subgenres.sub_genre_id").
			Where("sub_genres.name = ?", filter.SubGenre)
	}
	var titles []Title
	if err := query.Distinct().Order("titles.id DESC").Find(&titles).Error; err != nil {
		return nil, err
	}
	return titles, nil
}
