package controllers

import (
	"net/http"

	"github.com/MatthewLomelin/Pantry-Macronutrient-Tracker/services"
	"github.com/MatthewLomelin/Pantry-Macronutrient-Tracker/utils"

	"github.com/gin-gonic/gin"
)

type MacrosController struct {
	Targets *services.TargetService
	Summary *services.SummaryService
}

func NewMacrosController(t *services.TargetService, s *services.SummaryService) *MacrosController {
	return &MacrosController{Targets: t, Summary: s}
}

func (mc *MacrosController) GetTargets(c *gin.Context) {
	target, err := mc.Targets.Get()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, target)
}

func (mc *MacrosController) SetTargets(c *gin.Context) {
	var req struct {
		Calories *float64 `json:"calories"`
		Protein  *float64 `json:"protein"`
		Carbs    *float64 `json:"carbs"`
		Fat      *float64 `json:"fat"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for name, v := range map[string]*float64{
		"calories": req.Calories,
		"protein":  req.Protein,
		"carbs":    req.Carbs,
		"fat":      req.Fat,
	} {
		if v == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing field: " + name})
			return
		}
	}

	target, err := mc.Targets.Upsert(utils.Macros{
		Calories: *req.Calories,
		Protein:  *req.Protein,
		Carbs:    *req.Carbs,
		Fat:      *req.Fat,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, target)
}

func (mc *MacrosController) GetSummary(c *gin.Context) {
	day, ok := parseDateQuery(c)
	if !ok {
		return
	}
	summary, err := mc.Summary.ForDay(day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
