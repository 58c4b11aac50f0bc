package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rockrev/auth"
	"rockrev/service"
)

func (h *Handlers) signup(c *gin.Context) {
	var input service.SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	user, err := h.Users.Register(input)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handlers) login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	user, err := h.Users.Authenticate(input.Email, input.Password)
	if err != nil {
		var validation *service.ValidationError
		if errors.As(err, &validation) {
			RespondError(c, http.StatusUnauthorized, "unauthenticated", err)
			return
		}
		RespondServiceError(c, err)
		return
	}
	token, err := auth.NewToken(h.JWTSecret, user.ID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func (h *Handlers) me(c *gin.Context) {
	user, _ := currentUser(c)
	c.JSON(http.StatusOK, user)
}
