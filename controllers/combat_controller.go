package controllers

import (
	"net/http"
	"time"

	"ringside/services"

	"github.com/gin-gonic/gin"
)

type CombatController struct {
	combats *services.CombatService
}

func NewCombatController(combats *services.CombatService) *CombatController {
	return &CombatController{combats: combats}
}

type createCombatRequest struct {
	Creator  string    `json:"creator" binding:"required"`
	Opponent string    `json:"opponent" binding:"required"`
	Gym      string    `json:"gym" binding:"required"`
	Date     time.Time `json:"date" binding:"required"`
}

// Create creates a new combat invitation in pending state
func (ctrl *CombatController) Create(c *gin.Context) {
	var req createCombatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	combat, err := ctrl.combats.Create(c.Request.Context(), services.CreateCombatInput{
		Creator:  req.Creator,
		Opponent: req.Opponent,
		Gym:      req.Gym,
		Date:     req.Date,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, combat)
}

// List returns one page of combats, hidden ones included
func (ctrl *CombatController) List(c *gin.Context) {
	page, pageSize := pageParams(c)
	result, err := ctrl.combats.AllCombats(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetByID returns a single combat with references expanded
func (ctrl *CombatController) GetByID(c *gin.Context) {
	combat, err := ctrl.combats.CombatByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if combat == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Combat not found"})
		return
	}
	c.JSON(http.StatusOK, combat)
}

type updateCombatRequest struct {
	Opponent *string    `json:"opponent"`
	Gym      *string    `json:"gym"`
	Date     *time.Time `json:"date"`
	Status   *string    `json:"status"`
	IsHidden *bool      `json:"isHidden"`
}

// Update applies a partial update and returns the raw acknowledgment
func (ctrl *CombatController) Update(c *gin.Context) {
	var req updateCombatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ack, err := ctrl.combats.Update(c.Request.Context(), c.Param("id"), services.UpdateCombatInput{
		Opponent: req.Opponent,
		Gym:      req.Gym,
		Date:     req.Date,
		Status:   req.Status,
		IsHidden: req.IsHidden,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ack)
}

// Delete hard-deletes a combat
func (ctrl *CombatController) Delete(c *gin.Context) {
	ack, err := ctrl.combats.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ack)
}

type hideRequest struct {
	IsHidden *bool `json:"isHidden" binding:"required"`
}

// Hide toggles the visibility flag
func (ctrl *CombatController) Hide(c *gin.Context) {
	var req hideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ack, err := ctrl.combats.Hide(c.Request.Context(), c.Param("id"), *req.IsHidden)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ack)
}

// Boxers returns the creator/opponent pair for a combat
func (ctrl *CombatController) Boxers(c *gin.Context) {
	boxers, err := ctrl.combats.Boxers(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, boxers)
}

type respondRequest struct {
	UserID string `json:"userId" binding:"required"`
	Status string `json:"status" binding:"required"`
}

// Respond lets the invited opponent accept or reject an invitation
func (ctrl *CombatController) Respond(c *gin.Context) {
	var req respondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := ctrl.combats.RespondToInvitation(c.Request.Context(), c.Param("id"), req.UserID, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	if result.Deleted {
		c.JSON(http.StatusOK, gin.H{"deleted": true})
		return
	}
	c.JSON(http.StatusOK, result.Combat)
}

// Future lists a user's accepted upcoming combats
func (ctrl *CombatController) Future(c *gin.Context) {
	combats, err := ctrl.combats.FutureCombats(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, combats)
}

// Invitations lists the pending invitations a user has received
func (ctrl *CombatController) Invitations(c *gin.Context) {
	combats, err := ctrl.combats.PendingInvitations(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, combats)
}

// Sent lists the pending invitations a user has created
func (ctrl *CombatController) Sent(c *gin.Context) {
	combats, err := ctrl.combats.SentInvitations(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, combats)
}

// ByGym lists one page of visible combats held at a gym
func (ctrl *CombatController) ByGym(c *gin.Context) {
	page, pageSize := pageParams(c)
	result, err := ctrl.combats.CombatsByGym(c.Request.Context(), c.Param("id"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
