package controllers

import (
	"net/http"

	"github.com/MatthewLomelin/Pantry-Macronutrient-Tracker/services"

	"github.com/gin-gonic/gin"
)

type PantryController struct {
	Pantry *services.PantryService
}

func NewPantryController(p *services.PantryService) *PantryController {
	return &PantryController{Pantry: p}
}

func (pc *PantryController) List(c *gin.Context) {
	items, err := pc.Pantry.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (pc *PantryController) Create(c *gin.Context) {
	var req services.PantryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := pc.Pantry.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (pc *PantryController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := pc.Pantry.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (pc *PantryController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req services.PantryItemUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := pc.Pantry.Update(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (pc *PantryController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := pc.Pantry.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
