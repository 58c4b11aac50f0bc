package service

import (
	"errors"
	"strings"

	"github.com/thoas/go-funk"
	"gorm.io/gorm"

	"rockrev/entity"
)

// foldNames lowercases, trims and de-duplicates raw input names, dropping
// empty strings. Lowercase-before-lookup keeps "AC/DC" and "ac/dc" one row.
func foldNames(names []string) []string {
	folded := funk.Map(names, func(name string) string {
		return strings.ToLower(strings.TrimSpace(name))
	}).([]string)
	folded = funk.FilterString(folded, func(name string) bool {
		return name != ""
	})
	return funk.UniqString(folded)
}

// ResolveBands maps raw band names to canonical rows, creating missing ones.
// The insert tolerates a lost uniqueness race, which keeps the surrounding
// transaction live, and the loser looks the winner's row up instead.
func ResolveBands(db *gorm.DB, names []string) ([]entity.Band, error) {
	bands := make([]entity.Band, 0, len(names))
	for _, name := range foldNames(names) {
		var band entity.Band
		err := db.Where("name = ?", name).First(&band).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			band = entity.Band{Name: name}
			result := entity.UpsertBand(db, &band)
			err = result.Error
			if err == nil && result.RowsAffected == 0 {
				if rerr := db.Where("name = ?", name).First(&band).Error; rerr != nil {
					return nil, &ConflictError{Name: name}
				}
			}
		}
		if err != nil {
			return nil, err
		}
		bands = append(bands, band)
	}
	return bands, nil
}

// ResolveSubGenres maps raw subgenre names to canonical rows, creating missing
// ones, with the same race policy as ResolveBands
func ResolveSubGenres(db *gorm.DB, names []string) ([]entity.SubGenre, error) {
	subgenres := make([]entity.SubGenre, 0, len(names))
	for _, name := range foldNames(names) {
		var subgenre entity.SubGenre
		err := db.Where("name = ?", name).First(&subgenre).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			subgenre = entity.SubGenre{Name: name}
			result := entity.UpsertSubGenre(db, &subgenre)
			err = result.Error
			if err == nil && result.RowsAffected == 0 {
				if rerr := db.Where("name = ?", name).First(&subgenre).Error; rerr != nil {
					return nil, &ConflictError{Name: name}
				}
			}
		}
		if err != nil {
			return nil, err
		}
		subgenres = append(subgenres, subgenre)
	}
	return subgenres, nil
}
