package service

import (
	"github.com/stretchr/testify/assert"

	"rockrev/entity"
)

func (t *SuiteTest) Test_User_RegisterCreatesProfile() {
	user, err := t.users.Register(SignupInput{
		Email:    "Fan@Example.com",
		Username: "fan",
		Password: "long enough",
	})
	assert.NoError(t.T(), err)
	assert.Equal(t.T(), "fan@example.com", user.Email)

	var profile entity.Profile
	assert.NoError(t.T(), t.db.Where("user_id = ?", user.ID).First(&profile).Error)
}

func (t *SuiteTest) Test_User_RegisterRejectsDuplicates() {
	_, err := t.users.Register(SignupInput{Email: "dup@example.com", Username: "dup", Password: "password1"})
	assert.NoError(t.T(), err)

	var validation *ValidationError
	_, err = t.users.Register(SignupInput{Email: "dup@example.com", Username: "other", Password: "password1"})
	assert.ErrorAs(t.T(), err, &validation)
	_, err = t.users.Register(SignupInput{Email: "other@example.com", Username: "dup", Password: "password1"})
	assert.ErrorAs(t.T(), err, &validation)

	_, err = t.users.Register(SignupInput{Email: "bad", Username: "bad", Password: "password1"})
	assert.ErrorAs(t.T(), err, &validation)
	_, err = t.users.Register(SignupInput{Email: "short@example.com", Username: "short", Password: "tiny"})
	assert.ErrorAs(t.T(), err, &validation)
}

func (t *SuiteTest) Test_User_Authenticate() {
	_, err := t.users.Register(SignupInput{Email: "auth@example.com", Username: "auth", Password: "password1"})
	assert.NoError(t.T(), err)

	user, err := t.users.Authenticate("auth@example.com", "password1")
	assert.NoError(t.T(), err)
	assert.Equal(t.T(), "auth", user.Username)

	var validation *ValidationError
	_, err = t.users.Authenticate("auth@example.com", "wrong")
	assert.ErrorAs(t.T(), err, &validation)
	_, err = t.users.Authenticate("ghost@example.com", "password1")
	assert.ErrorAs(t.T(), err, &validation)
}

func (t *SuiteTest) Test_User_LinkTelegram() {
	_, err := t.users.Register(SignupInput{Email: "tg@example.com", Username: "tg", Password: "password1"})
	assert.NoError(t.T(), err)

	user, err := t.users.LinkTelegram("tg@example.com", 555)
	assert.NoError(t.T(), err)
	if assert.NotNil(t.T(), user.TelegramID) {
		assert.EqualValues(t.T(), 555, *user.TelegramID)
	}

	linked, err := t.users.Linked(555)
	assert.NoError(t.T(), err)
	assert.True(t.T(), linked)
	linked, err = t.users.Linked(556)
	assert.NoError(t.T(), err)
	assert.False(t.T(), linked)

	var notFound *NotFoundError
	_, err = t.users.LinkTelegram("missing@example.com", 777)
	assert.ErrorAs(t.T(), err, &notFound)
}

func (t *SuiteTest) Test_User_DeleteCascades() {
	user, err := t.users.Register(SignupInput{Email: "gone@example.com", Username: "gone", Password: "password1"})
	assert.NoError(t.T(), err)

	title := t.makeTitle("Residue")
	_, err = t.reviews.Create(user.ID, title.ID, ReviewInput{Text: "left behind", Score: 5})
	assert.NoError(t.T(), err)
	band := t.makeBand("residuary")
	_, err = t.follows.Follow(user.ID, band.ID)
	assert.NoError(t.T(), err)

	var permission *PermissionError
	stranger := t.makeUser("stranger", nil)
	assert.ErrorAs(t.T(), t.users.Delete(stranger, user.ID), &permission)

	assert.NoError(t.T(), t.users.Delete(*user, user.ID))

	var reviews, follows int64
	t.db.Model(&entity.Review{}).Where("author_id = ?", user.ID).Count(&reviews)
	t.db.Model(&entity.Follow{}).Where("user_id = ?", user.ID).Count(&follows)
	assert.EqualValues(t.T(), 0, reviews)
	assert.EqualValues(t.T(), 0, follows)
}
