package service

import (
	"fmt"

	"github.com/stretchr/testify/assert"

	"rockrev/entity"
)

func (t *SuiteTest) Test_Follow_Idempotent() {
	band := t.makeBand("clutch")
	user := t.makeUser("fan", nil)

	first, err := t.follows.Follow(user.ID, band.ID)
	assert.NoError(t.T(), err)
	assert.False(t.T(), first.AlreadyFollowing)

	second, err := t.follows.Follow(user.ID, band.ID)
	assert.NoError(t.T(), err)
	assert.True(t.T(), second.AlreadyFollowing)
	assert.Equal(t.T(), first.Follow.ID, second.Follow.ID)

	var count int64
	t.db.Model(&entity.Follow{}).Where("user_id = ? AND following_band_id = ?", user.ID, band.ID).Count(&count)
	assert.EqualValues(t.T(), 1, count)
}

func (t *SuiteTest) Test_Follow_UnknownBand() {
	user := t.makeUser("nobody", nil)
	_, err := t.follows.Follow(user.ID, 31337)
	var notFound *NotFoundError
	assert.ErrorAs(t.T(), err, &notFound)
}

func (t *SuiteTest) Test_Unfollow() {
	band := t.makeBand("kyuss")
	user := t.makeUser("exfan", nil)

	// not followed yet: not found, not a silent success
	err := t.follows.Unfollow(user.ID, band.ID)
	var notFound *NotFoundError
	assert.ErrorAs(t.T(), err, &notFound)

	_, err = t.follows.Follow(user.ID, band.ID)
	assert.NoError(t.T(), err)
	assert.NoError(t.T(), t.follows.Unfollow(user.ID, band.ID))

	var count int64
	t.db.Model(&entity.Follow{}).Count(&count)
	assert.EqualValues(t.T(), 0, count)
}

func (t *SuiteTest) Test_PopularBands_OrderAndTieBreak() {
	low := t.makeBand("aa")
	high := t.makeBand("bb")
	tied := t.makeBand("cc")

	for i, band := range []entity.Band{high, high, high, low, tied} {
		user := t.makeUser(fmt.Sprintf("fan%d", i), nil)
		_, err := t.follows.Follow(user.ID, band.ID)
		assert.NoError(t.T(), err)
	}

	ranked, err := entity.PopularBands(t.db, 10)
	assert.NoError(t.T(), err)
	if assert.Len(t.T(), ranked, 3) {
		assert.Equal(t.T(), high.ID, ranked[0].ID)
		assert.EqualValues(t.T(), 3, ranked[0].FollowersCount)
		// equal counts fall back to ascending band id
		assert.Equal(t.T(), low.ID, ranked[1].ID)
		assert.Equal(t.T(), tied.ID, ranked[2].ID)
	}
}

func (t *SuiteTest) Test_Follow_ListByUser() {
	band := t.makeBand("pelican")
	other := t.makeBand("isis")
	user := t.makeUser("lists", nil)
	rival := t.makeUser("rival", nil)

	_, err := t.follows.Follow(user.ID, band.ID)
	assert.NoError(t.T(), err)
	_, err = t.follows.Follow(rival.ID, other.ID)
	assert.NoError(t.T(), err)

	follows, err := t.follows.ListByUser(user.ID)
	assert.NoError(t.T(), err)
	if assert.Len(t.T(), follows, 1) {
		assert.Equal(t.T(), "pelican", follows[0].FollowingBand.Name)
	}
}
