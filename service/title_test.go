package service

import (
	"fmt"
	"time"

	"github.com/stretchr/testify/assert"

	"rockrev/entity"
)

func (t *SuiteTest) Test_Title_YearValidation() {
	year := time.Now().Year()

	_, err := t.titles.Create(TitleInput{Name: "too early", Year: year + 1})
	var validation *ValidationError
	assert.ErrorAs(t.T(), err, &validation)

	_, err = t.titles.Create(TitleInput{Name: "fresh", Year: year})
	assert.NoError(t.T(), err)

	_, err = t.titles.Create(TitleInput{Name: "nowhere", Year: 0})
	assert.ErrorAs(t.T(), err, &validation)
}

func (t *SuiteTest) Test_Title_SharedBandAcrossTitles() {
	_, err := t.titles.Create(TitleInput{Name: "Master of Puppets", Year: 1986, Bands: []string{"Metallica"}})
	assert.NoError(t.T(), err)
	_, err = t.titles.Create(TitleInput{Name: "Ride the Lightning", Year: 1984, Bands: []string{"METALLICA"}})
	assert.NoError(t.T(), err)

	var count int64
	t.db.Model(&entity.Band{}).Count(&count)
	assert.EqualValues(t.T(), 1, count)
}

func (t *SuiteTest) Test_Title_AvgScore() {
	title, err := t.titles.Create(TitleInput{Name: "Paranoid", Year: 1970, Bands: []string{"black sabbath"}})
	assert.NoError(t.T(), err)

	read, err := t.titles.Get(title.ID)
	assert.NoError(t.T(), err)
	assert.Nil(t.T(), read.AvgScore)

	for i, score := range []int{4, 6} {
		author := t.makeUser(fmt.Sprintf("reviewer%d", i), nil)
		_, err := t.reviews.Create(author.ID, title.ID, ReviewInput{Text: "ok", Score: score})
		assert.NoError(t.T(), err)
	}

	read, err = t.titles.Get(title.ID)
	assert.NoError(t.T(), err)
	if assert.NotNil(t.T(), read.AvgScore) {
		assert.InDelta(t.T(), 5.0, *read.AvgScore, 0.001)
	}
	assert.Len(t.T(), read.Reviews, 2)
}

func (t *SuiteTest) Test_Title_UpdateReplacesAssociations() {
	title, err := t.titles.Create(TitleInput{
		Name:      "Split",
		Year:      2005,
		Bands:     []string{"alpha", "beta"},
		SubGenres: []string{"sludge"},
	})
	assert.NoError(t.T(), err)

	updated, err := t.titles.Update(title.ID, TitleInput{
		Name:  "Split",
		Year:  2005,
		Bands: []string{"beta", "gamma", "GAMMA"},
	})
	assert.NoError(t.T(), err)
	assert.Len(t.T(), updated.Bands, 2)

	names := []string{updated.Bands[0].Name, updated.Bands[1].Name}
	assert.ElementsMatch(t.T(), []string{"beta", "gamma"}, names)

	var joinRows int64
	t.db.Table("title_bands").Where("title_id = ?", title.ID).Count(&joinRows)
	assert.EqualValues(t.T(), 2, joinRows)

	var subGenreRows int64
	t.db.Table("title_subgenres").Where("title_id = ?", title.ID).Count(&subGenreRows)
	assert.EqualValues(t.T(), 0, subGenreRows)

	// removed from the association, not from the catalog
	var bands int64
	t.db.Model(&entity.Band{}).Count(&bands)
	assert.EqualValues(t.T(), 3, bands)
}

func (t *SuiteTest) Test_Title_UpdateMissing() {
	_, err := t.titles.Update(4242, TitleInput{Name: "ghost", Year: 2000})
	var notFound *NotFoundError
	assert.ErrorAs(t.T(), err, &notFound)
}

func (t *SuiteTest) Test_Title_DeleteKeepsBands() {
	title, err := t.titles.Create(TitleInput{Name: "Gone", Year: 2001, Bands: []string{"keepers"}})
	assert.NoError(t.T(), err)

	author := t.makeUser("deleter", nil)
	_, err = t.reviews.Create(author.ID, title.ID, ReviewInput{Text: "bye", Score: 7})
	assert.NoError(t.T(), err)

	assert.NoError(t.T(), t.titles.Delete(title.ID))

	var bands, reviews, joinRows int64
	t.db.Model(&entity.Band{}).Count(&bands)
	t.db.Model(&entity.Review{}).Count(&reviews)
	t.db.Table("title_bands").Count(&joinRows)
	assert.EqualValues(t.T(), 1, bands)
	assert.EqualValues(t.T(), 0, reviews)
	assert.EqualValues(t.T(), 0, joinRows)
}

func (t *SuiteTest) Test_Title_ListFilters() {
	_, err := t.titles.Create(TitleInput{Name: "Dopesmoker", Year: 2003, Bands: []string{"sleep"}, SubGenres: []string{"stoner"}})
	assert.NoError(t.T(), err)
	_, err = t.titles.Create(TitleInput{Name: "Holy Mountain", Year: 1992, Bands: []string{"sleep"}, SubGenres: []string{"stoner"}})
	assert.NoError(t.T(), err)
	_, err = t.titles.Create(TitleInput{Name: "Other", Year: 1992, Bands: []string{"verdigris"}})
	assert.NoError(t.T(), err)

	byBand, err := t.titles.List(entity.TitleFilter{Band: "sleep"})
	assert.NoError(t.T(), err)
	assert.Len(t.T(), byBand, 2)
	// newest first
	assert.Equal(t.T(), "Holy Mountain", byBand[0].Name)

	byYear, err := t.titles.List(entity.TitleFilter{Year: 1992})
	assert.NoError(t.T(), err)
	assert.Len(t.T(), byYear, 2)

	byName, err := t.titles.List(entity.TitleFilter{Name: "smoker"})
	assert.NoError(t.T(), err)
	assert.Len(t.T(), byName, 1)
}
