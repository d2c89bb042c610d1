package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Younes-Yassine/CSC3916-Assignment4/internal/application"
	"github.com/Younes-Yassine/CSC3916-Assignment4/pkg/validation"
)

type ReviewHandler struct {
	Svc    *application.ReviewService
	Logger *logrus.Logger
}

func NewReviewHandler(svc *application.ReviewService, logger *logrus.Logger) *ReviewHandler {
	return &ReviewHandler{Svc: svc, Logger: logger}
}

type createReviewRequest struct {
	MovieID  string `json:"movieId" binding:"required"`
	Username string `json:"username" binding:"required"`
	Review   string `json:"review" binding:"required"`
	// Pointer so a zero rating counts as present, not missing.
	Rating *int `json:"rating" binding:"required"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if h.Logger != nil {
			h.Logger.WithField("details", validation.ToDetails(err)).Debug("review payload rejected")
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields."})
		return
	}
	_, err := h.Svc.Create(c.Request.Context(), application.CreateReviewInput{
		MovieID:  req.MovieID,
		Username: req.Username,
		Review:   req.Review,
		Rating:   *req.Rating,
	})
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("review create failed")
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review created!"})
}

func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.Svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// Delete is idempotent: removing an id that does not exist still succeeds.
func (h *ReviewHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted!"})
}
