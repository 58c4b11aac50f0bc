package service

import (
	"github.com/stretchr/testify/assert"

	"rockrev/entity"
)

func (t *SuiteTest) makeTitle(name string) entity.Title {
	title, err := t.titles.Create(TitleInput{Name: name, Year: 2020})
	assert.NoError(t.T(), err)
	return *title
}

func (t *SuiteTest) Test_Review_ScoreBounds() {
	title := t.makeTitle("Bounds")
	var validation *ValidationError

	lowAuthor := t.makeUser("low", nil)
	_, err := t.reviews.Create(lowAuthor.ID, title.ID, ReviewInput{Text: "no", Score: 0})
	assert.ErrorAs(t.T(), err, &validation)

	highAuthor := t.makeUser("high", nil)
	_, err = t.reviews.Create(highAuthor.ID, title.ID, ReviewInput{Text: "no", Score: 11})
	assert.ErrorAs(t.T(), err, &validation)

	_, err = t.reviews.Create(lowAuthor.ID, title.ID, ReviewInput{Text: "min", Score: 1})
	assert.NoError(t.T(), err)
	_, err = t.reviews.Create(highAuthor.ID, title.ID, ReviewInput{Text: "max", Score: 10})
	assert.NoError(t.T(), err)
}

func (t *SuiteTest) Test_Review_OnePerAuthorPerTitle() {
	title := t.makeTitle("Once")
	author := t.makeUser("once", nil)

	_, err := t.reviews.Create(author.ID, title.ID, ReviewInput{Text: "first", Score: 8})
	assert.NoError(t.T(), err)

	_, err = t.reviews.Create(author.ID, title.ID, ReviewInput{Text: "second", Score: 9})
	var validation *ValidationError
	assert.ErrorAs(t.T(), err, &validation)

	var count int64
	t.db.Model(&entity.Review{}).Where("author_id = ? AND title_id = ?", author.ID, title.ID).Count(&count)
	assert.EqualValues(t.T(), 1, count)

	// same author may review another title
	other := t.makeTitle("Twice")
	_, err = t.reviews.Create(author.ID, other.ID, ReviewInput{Text: "fine", Score: 7})
	assert.NoError(t.T(), err)
}

func (t *SuiteTest) Test_Review_MissingTitle() {
	author := t.makeUser("lost", nil)
	_, err := t.reviews.Create(author.ID, 9000, ReviewInput{Text: "void", Score: 5})
	var notFound *NotFoundError
	assert.ErrorAs(t.T(), err, &notFound)
}

func (t *SuiteTest) Test_Review_NewestFirst() {
	title := t.makeTitle("Ordered")
	for _, name := range []string{"a", "b", "c"} {
		author := t.makeUser(name, nil)
		_, err := t.reviews.Create(author.ID, title.ID, ReviewInput{Text: name, Score: 5})
		assert.NoError(t.T(), err)
	}
	reviews, err := t.reviews.ListByTitle(title.ID)
	assert.NoError(t.T(), err)
	if assert.Len(t.T(), reviews, 3) {
		assert.Equal(t.T(), "c", reviews[0].Text)
		assert.Equal(t.T(), "c", reviews[0].Author)
		assert.Equal(t.T(), "a", reviews[2].Text)
		assert.Equal(t.T(), "a", reviews[2].Author)
	}
}

func (t *SuiteTest) Test_Review_AuthorOrStaffOnly() {
	title := t.makeTitle("Guarded")
	author := t.makeUser("author", nil)
	stranger := t.makeUser("stranger", nil)
	staff := t.makeUser("staff", nil)
	t.db.Model(&staff).Update("is_staff", true)
	staff.IsStaff = true

	review, err := t.reviews.Create(author.ID, title.ID, ReviewInput{Text: "mine", Score: 6})
	assert.NoError(t.T(), err)

	var permission *PermissionError
	_, err = t.reviews.Update(stranger, review.ID, ReviewInput{Text: "hijack", Score: 1})
	assert.ErrorAs(t.T(), err, &permission)
	err = t.reviews.Delete(stranger, review.ID)
	assert.ErrorAs(t.T(), err, &permission)

	updated, err := t.reviews.Update(author, review.ID, ReviewInput{Text: "edited", Score: 9})
	assert.NoError(t.T(), err)
	assert.Equal(t.T(), 9, updated.Score)

	assert.NoError(t.T(), t.reviews.Delete(staff, review.ID))
}

func (t *SuiteTest) Test_Comment_Lifecycle() {
	title := t.makeTitle("Discussed")
	author := t.makeUser("op", nil)
	commenter := t.makeUser("commenter", nil)

	review, err := t.reviews.Create(author.ID, title.ID, ReviewInput{Text: "listen", Score: 8})
	assert.NoError(t.T(), err)

	comments := NewComments(t.db)
	_, err = comments.Create(commenter.ID, review.ID, "agreed")
	assert.NoError(t.T(), err)
	_, err = comments.Create(commenter.ID, 777, "void")
	var notFound *NotFoundError
	assert.ErrorAs(t.T(), err, &notFound)

	listed, err := comments.ListByReview(review.ID)
	assert.NoError(t.T(), err)
	assert.Len(t.T(), listed, 1)

	var permission *PermissionError
	err = comments.Delete(author, listed[0].ID)
	assert.ErrorAs(t.T(), err, &permission)
	assert.NoError(t.T(), comments.Delete(commenter, listed[0].ID))
}
