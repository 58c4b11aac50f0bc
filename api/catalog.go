package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rockrev/service"
)

func (h *Handlers) listSubGenres(c *gin.Context) {
	subgenres, err := h.SubGenres.List()
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, subgenres)
}

type subGenreInput struct {
	Name string `json:"name"`
}

func (h *Handlers) createSubGenre(c *gin.Context) {
	var input subGenreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	subgenre, err := h.SubGenres.Create(input.Name)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, subgenre)
}

func (h *Handlers) deleteSubGenre(c *gin.Context) {
	subGenreID, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.SubGenres.Delete(subGenreID); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handlers) listBands(c *gin.Context) {
	bands, err := h.Bands.List()
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bands)
}

func (h *Handlers) getBand(c *gin.Context) {
	bandID, ok := paramID(c, "id")
	if !ok {
		return
	}
	band, err := h.Bands.Get(bandID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, band)
}

func (h *Handlers) createBand(c *gin.Context) {
	var input service.BandInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	band, err := h.Bands.Create(input)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, band)
}

func (h *Handlers) updateBand(c *gin.Context) {
	bandID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var input service.BandInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	band, err := h.Bands.Update(bandID, input)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, band)
}

func (h *Handlers) deleteBand(c *gin.Context) {
	bandID, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.Bands.Delete(bandID); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
