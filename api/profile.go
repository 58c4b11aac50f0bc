package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rockrev/service"
)

func (h *Handlers) listProfiles(c *gin.Context) {
	profiles, err := h.Profiles.List()
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

func (h *Handlers) getProfile(c *gin.Context) {
	profile, err := h.Profiles.GetByUsername(c.Param("username"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *Handlers) updateProfile(c *gin.Context) {
	user, _ := currentUser(c)
	var input service.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	profile, err := h.Profiles.Update(user, c.Param("username"), input)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *Handlers) home(c *gin.Context) {
	page, err := h.Home.Build()
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// news proxies the upstream aggregators; their failures surface as 502 and
// stay isolated to this endpoint
func (h *Handlers) news(c *gin.Context) {
	items, err := h.News.Fetch()
	if err != nil {
		RespondError(c, http.StatusBadGateway, "upstream", err)
		return
	}
	c.JSON(http.StatusOK, items)
}
