package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Younes-Yassine/CSC3916-Assignment4/internal/application"
	"github.com/Younes-Yassine/CSC3916-Assignment4/internal/domain/repository"
)

type MovieHandler struct {
	Svc    *application.MovieService
	Logger *logrus.Logger
}

func NewMovieHandler(svc *application.MovieService, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{Svc: svc, Logger: logger}
}

// Get serves GET /movies/:id. The id is parsed before any store call; with
// ?reviews=true (the exact string) the joined aggregate is returned instead
// of the plain record.
func (h *MovieHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie id"})
		return
	}

	if c.Query("reviews") == "true" {
		agg, err := h.Svc.GetWithReviews(c.Request.Context(), id)
		if err != nil {
			h.movieError(c, err)
			return
		}
		c.JSON(http.StatusOK, agg)
		return
	}

	movie, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		h.movieError(c, err)
		return
	}
	c.JSON(http.StatusOK, movie)
}

func (h *MovieHandler) List(c *gin.Context) {
	movies, err := h.Svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, movies)
}

func (h *MovieHandler) movieError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
	case errors.Is(err, repository.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie id"})
	default:
		if h.Logger != nil {
			h.Logger.WithError(err).Error("movie lookup failed")
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
