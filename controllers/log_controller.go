package controllers

import (
	"net/http"

	"github.com/MatthewLomelin/Pantry-Macronutrient-Tracker/services"

	"github.com/gin-gonic/gin"
)

type LogController struct {
	Logs *services.LogService
}

func NewLogController(l *services.LogService) *LogController {
	return &LogController{Logs: l}
}

func (lc *LogController) List(c *gin.Context) {
	day, ok := parseDateQuery(c)
	if !ok {
		return
	}
	entries, err := lc.Logs.ListByDay(day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (lc *LogController) Create(c *gin.Context) {
	day, ok := parseDateQuery(c)
	if !ok {
		return
	}
	var req services.LogEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := lc.Logs.AddEntry(day, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (lc *LogController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req services.LogEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := lc.Logs.UpdateEntry(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (lc *LogController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := lc.Logs.DeleteEntry(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (lc *LogController) Consume(c *gin.Context) {
	var req services.ConsumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := lc.Logs.Consume(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}
