package controllers

import (
	"net/http"

	"ringside/middlewares"
	"ringside/services"

	"github.com/gin-gonic/gin"
)

type GymController struct {
	gyms *services.GymService
}

func NewGymController(gyms *services.GymService) *GymController {
	return &GymController{gyms: gyms}
}

type createGymRequest struct {
	Name     string  `json:"name" binding:"required"`
	Place    string  `json:"place"`
	Price    float64 `json:"price"`
	Email    string  `json:"email" binding:"required,email"`
	Phone    string  `json:"phone"`
	Password string  `json:"password" binding:"required,min=6"`
}

// Create registers a new gym
func (ctrl *GymController) Create(c *gin.Context) {
	var req createGymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gym, err := ctrl.gyms.Create(c.Request.Context(), services.CreateGymInput{
		Name:     req.Name,
		Place:    req.Place,
		Price:    req.Price,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gym)
}

// List returns one page of visible gyms
func (ctrl *GymController) List(c *gin.Context) {
	page, pageSize := pageParams(c)
	result, err := ctrl.gyms.List(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetByID fetches a gym by id
func (ctrl *GymController) GetByID(c *gin.Context) {
	gym, err := ctrl.gyms.GymByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gym)
}

type updateGymRequest struct {
	Name     *string  `json:"name"`
	Place    *string  `json:"place"`
	Price    *float64 `json:"price"`
	Email    *string  `json:"email"`
	Phone    *string  `json:"phone"`
	Password *string  `json:"password"`
}

// Update applies a partial update to a gym
func (ctrl *GymController) Update(c *gin.Context) {
	var req updateGymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ack, err := ctrl.gyms.Update(c.Request.Context(), c.Param("id"), services.UpdateGymInput{
		Name:     req.Name,
		Place:    req.Place,
		Price:    req.Price,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ack)
}

// Delete removes a gym
func (ctrl *GymController) Delete(c *gin.Context) {
	ack, err := ctrl.gyms.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ack)
}

// Hide toggles a gym's visibility
func (ctrl *GymController) Hide(c *gin.Context) {
	var req hideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ack, err := ctrl.gyms.Hide(c.Request.Context(), c.Param("id"), *req.IsHidden)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ack)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates a gym and issues an access/refresh token pair
func (ctrl *GymController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gym, tokens, err := ctrl.gyms.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"gym":          gym,
		"accessToken":  tokens.AccessToken,
		"refreshToken": tokens.RefreshToken,
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// Refresh rotates the access token using a refresh token
func (ctrl *GymController) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tokens, err := ctrl.gyms.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"accessToken": tokens.AccessToken})
}

// Current returns the authenticated gym
func (ctrl *GymController) Current(c *gin.Context) {
	subject := c.GetString(middlewares.SubjectKey)
	if subject == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	gym, err := ctrl.gyms.Current(c.Request.Context(), subject)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gym)
}
