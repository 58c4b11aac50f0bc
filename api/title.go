package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rockrev/entity"
	"rockrev/service"
)

func (h *Handlers) listTitles(c *gin.Context) {
	filter := entity.TitleFilter{
		Name:     c.Query("name"),
		Band:     c.Query("band"),
		SubGenre: c.Query("subgenre"),
	}
	if year := c.Query("year"); year != "" {
		parsed, err := strconv.Atoi(year)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "bad_request", err)
			return
		}
		filter.Year = parsed
	}
	titles, err := h.Titles.List(filter)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, titles)
}

func (h *Handlers) getTitle(c *gin.Context) {
	titleID, ok := paramID(c, "id")
	if !ok {
		return
	}
	title, err := h.Titles.Get(titleID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, title)
}

func (h *Handlers) createTitle(c *gin.Context) {
	var input service.TitleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	title, err := h.Titles.Create(input)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, title)
}

func (h *Handlers) updateTitle(c *gin.Context) {
	titleID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var input service.TitleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	title, err := h.Titles.Update(titleID, input)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, title)
}

func (h *Handlers) deleteTitle(c *gin.Context) {
	titleID, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.Titles.Delete(titleID); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
