package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rockrev/service"
)

func (h *Handlers) listReviews(c *gin.Context) {
	titleID, ok := paramID(c, "id")
	if !ok {
		return
	}
	reviews, err := h.Reviews.ListByTitle(titleID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *Handlers) createReview(c *gin.Context) {
	titleID, ok := paramID(c, "id")
	if !ok {
		return
	}
	user, _ := currentUser(c)
	var input service.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	review, err := h.Reviews.Create(user.ID, titleID, input)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *Handlers) updateReview(c *gin.Context) {
	reviewID, ok := paramID(c, "id")
	if !ok {
		return
	}
	user, _ := currentUser(c)
	var input service.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	review, err := h.Reviews.Update(user, reviewID, input)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *Handlers) deleteReview(c *gin.Context) {
	reviewID, ok := paramID(c, "id")
	if !ok {
		return
	}
	user, _ := currentUser(c)
	if err := h.Reviews.Delete(user, reviewID); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type commentInput struct {
	Text string `json:"text"`
}

func (h *Handlers) listComments(c *gin.Context) {
	reviewID, ok := paramID(c, "id")
	if !ok {
		return
	}
	comments, err := h.Comments.ListByReview(reviewID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (h *Handlers) createComment(c *gin.Context) {
	reviewID, ok := paramID(c, "id")
	if !ok {
		return
	}
	user, _ := currentUser(c)
	var input commentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	comment, err := h.Comments.Create(user.ID, reviewID, input.Text)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *Handlers) deleteComment(c *gin.Context) {
	commentID, ok := paramID(c, "id")
	if !ok {
		return
	}
	user, _ := currentUser(c)
	if err := h.Comments.Delete(user, commentID); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
