package controllers

import (
	"net/http"

	"ringside/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

type createUserRequest struct {
	Name   string  `json:"name" binding:"required"`
	Email  string  `json:"email" binding:"required,email"`
	Weight float64 `json:"weight"`
	City   string  `json:"city"`
}

func (ctrl *UserController) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ctrl.users.Create(c.Request.Context(), services.CreateUserInput{
		Name:   req.Name,
		Email:  req.Email,
		Weight: req.Weight,
		City:   req.City,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (ctrl *UserController) List(c *gin.Context) {
	page, pageSize := pageParams(c)
	result, err := ctrl.users.List(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (ctrl *UserController) GetByID(c *gin.Context) {
	user, err := ctrl.users.UserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
