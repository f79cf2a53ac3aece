package controllers

import (
	"net/http"

	"ringside/services"

	"github.com/gin-gonic/gin"
)

type RatingController struct {
	ratings *services.RatingService
}

func NewRatingController(ratings *services.RatingService) *RatingController {
	return &RatingController{ratings: ratings}
}

type createRatingRequest struct {
	Combat  string `json:"combat" binding:"required"`
	From    string `json:"from" binding:"required"`
	To      string `json:"to" binding:"required"`
	Score   int    `json:"score" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// Create leaves a rating on a combat
func (ctrl *RatingController) Create(c *gin.Context) {
	var req createRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := ctrl.ratings.Create(c.Request.Context(), services.CreateRatingInput{
		Combat:  req.Combat,
		From:    req.From,
		To:      req.To,
		Score:   req.Score,
		Comment: req.Comment,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rating)
}

// ByCombat lists the ratings left on a combat
func (ctrl *RatingController) ByCombat(c *gin.Context) {
	ratings, err := ctrl.ratings.ByCombat(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ratings)
}

// ForUser lists the ratings a user has received
func (ctrl *RatingController) ForUser(c *gin.Context) {
	ratings, err := ctrl.ratings.ForUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ratings)
}
