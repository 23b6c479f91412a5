package controllers

import (
	"net/http"

	"github.com/MatthewLomelin/Pantry-Macronutrient-Tracker/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Admin *services.AdminService
}

func NewAdminController(a *services.AdminService) *AdminController {
	return &AdminController{Admin: a}
}

// Reset wipes all pantry and diary data. Targets are kept.
func (ac *AdminController) Reset(c *gin.Context) {
	if err := ac.Admin.ResetAll(); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
