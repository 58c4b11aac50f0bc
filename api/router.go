package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rockrev/misc"
	"rockrev/service"
)

// Handlers bundles the services the HTTP surface is built from
type Handlers struct {
	Users     *service.Users
	Bands     *service.Bands
	SubGenres *service.SubGenres
	Titles    *service.Titles
	Reviews   *service.Reviews
	Comments  *service.Comments
	Follows   *service.Follows
	Profiles  *service.Profiles
	Home      *service.Home
	News      *service.News
	JWTSecret string
	MediaDir  string
	MediaURL  string
}

// NewRouter builds the gin engine with all routes attached
func NewRouter(h *Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(Authenticate(h.JWTSecret, h.Users))

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(misc.Registry, promhttp.HandlerOpts{})))
	if h.MediaDir != "" {
		router.Static(h.MediaURL, h.MediaDir)
	}

	root := router.Group("/api")

	root.POST("/auth/signup", h.signup)
	root.POST("/auth/login", h.login)
	root.GET("/auth/me", RequireAuth(), h.me)

	root.GET("/subgenres", h.listSubGenres)
	root.POST("/subgenres", RequireStaff(), h.createSubGenre)
	root.DELETE("/subgenres/:id", RequireStaff(), h.deleteSubGenre)

	root.GET("/bands", h.listBands)
	root.GET("/bands/:id", h.getBand)
	root.POST("/bands", RequireStaff(), h.createBand)
	root.PATCH("/bands/:id", RequireStaff(), h.updateBand)
	root.DELETE("/bands/:id", RequireStaff(), h.deleteBand)
	root.POST("/bands/:id/follow", RequireAuth(), h.follow)
	root.DELETE("/bands/:id/follow", RequireAuth(), h.unfollow)
	root.GET("/follows", RequireAuth(), h.listFollows)

	root.GET("/titles", h.listTitles)
	root.GET("/titles/:id", h.getTitle)
	root.POST("/titles", RequireStaff(), h.createTitle)
	root.PUT("/titles/:id", RequireStaff(), h.updateTitle)
	root.DELETE("/titles/:id", RequireStaff(), h.deleteTitle)

	root.GET("/titles/:id/reviews", h.listReviews)
	root.POST("/titles/:id/reviews", RequireAuth(), h.createReview)
	root.PATCH("/reviews/:id", RequireAuth(), h.updateReview)
	root.DELETE("/reviews/:id", RequireAuth(), h.deleteReview)

	root.GET("/reviews/:id/comments", h.listComments)
	root.POST("/reviews/:id/comments", RequireAuth(), h.createComment)
	root.DELETE("/comments/:id", RequireAuth(), h.deleteComment)

	root.GET("/profiles", h.listProfiles)
	root.GET("/profiles/:username", h.getProfile)
	root.PATCH("/profiles/:username", RequireAuth(), h.updateProfile)

	root.GET("/home", h.home)
	root.GET("/news", h.news)

	return router
}
