package service

import (
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"rockrev/entity"
)

func (t *SuiteTest) Test_Normalizer_CaseFoldSharesRow() {
	first, err := ResolveBands(t.db, []string{"Metallica"})
	assert.NoError(t.T(), err)
	second, err := ResolveBands(t.db, []string{"METALLICA"})
	assert.NoError(t.T(), err)

	assert.Len(t.T(), first, 1)
	assert.Len(t.T(), second, 1)
	assert.Equal(t.T(), first[0].ID, second[0].ID)
	assert.Equal(t.T(), "metallica", second[0].Name)

	var count int64
	t.db.Model(&entity.Band{}).Count(&count)
	assert.EqualValues(t.T(), 1, count)
}

func (t *SuiteTest) Test_Normalizer_DedupsInput() {
	bands, err := ResolveBands(t.db, []string{"Doom", "doom", " DOOM ", ""})
	assert.NoError(t.T(), err)
	assert.Len(t.T(), bands, 1)

	var count int64
	t.db.Model(&entity.Band{}).Count(&count)
	assert.EqualValues(t.T(), 1, count)
}

func (t *SuiteTest) Test_Normalizer_LostCreateRaceKeepsTransactionUsable() {
	winner := entity.Band{Name: "boris"}
	t.db.Create(&winner)

	err := t.db.Transaction(func(tx *gorm.DB) error {
		loser := entity.Band{Name: "boris"}
		result := entity.UpsertBand(tx, &loser)
		assert.NoError(t.T(), result.Error)
		assert.EqualValues(t.T(), 0, result.RowsAffected)

		// the transaction must still accept statements after the conflict
		var found entity.Band
		if err := tx.Where("name = ?", "boris").First(&found).Error; err != nil {
			return err
		}
		assert.Equal(t.T(), winner.ID, found.ID)
		return tx.Create(&entity.SubGenre{Name: "drone"}).Error
	})
	assert.NoError(t.T(), err)

	var count int64
	t.db.Model(&entity.Band{}).Count(&count)
	assert.EqualValues(t.T(), 1, count)
}

func (t *SuiteTest) Test_Normalizer_ReusesExistingSubGenres() {
	existing := entity.SubGenre{Name: "doom metal"}
	t.db.Create(&existing)

	subgenres, err := ResolveSubGenres(t.db, []string{"Doom Metal", "Stoner Rock"})
	assert.NoError(t.T(), err)
	assert.Len(t.T(), subgenres, 2)
	assert.Equal(t.T(), existing.ID, subgenres[0].ID)

	var count int64
	t.db.Model(&entity.SubGenre{}).Count(&count)
	assert.EqualValues(t.T(), 2, count)
}
