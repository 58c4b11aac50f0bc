package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) follow(c *gin.Context) {
	bandID, ok := paramID(c, "id")
	if !ok {
		return
	}
	user, _ := currentUser(c)
	result, err := h.Follows.Follow(user.ID, bandID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	status := http.StatusCreated
	if result.AlreadyFollowing {
		status = http.StatusOK
	}
	c.JSON(status, gin.H{
		"following_band":    result.Follow.FollowingBand,
		"already_following": result.AlreadyFollowing,
	})
}

func (h *Handlers) unfollow(c *gin.Context) {
	bandID, ok := paramID(c, "id")
	if !ok {
		return
	}
	user, _ := currentUser(c)
	if err := h.Follows.Unfollow(user.ID, bandID); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handlers) listFollows(c *gin.Context) {
	user, _ := currentUser(c)
	follows, err := h.Follows.ListByUser(user.ID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, follows)
}
