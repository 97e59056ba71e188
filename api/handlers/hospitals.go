package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tauheed-akhtar/diabetes-predictor/pkg/models"
)

type HospitalHandler struct{}

func NewHospitalHandler() *HospitalHandler {
	return &HospitalHandler{}
}

// List godoc
// @Summary Nearby hospitals
// @Description Returns the static hospital map points and display lines
// @Tags Hospitals
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /hospitals [get]
func (h *HospitalHandler) List(c *gin.Context) {
	hospitals := models.Hospitals()

	lines := make([]string, len(hospitals))
	for i, hosp := range hospitals {
		lines[i] = hosp.DisplayLine()
	}

	c.JSON(http.StatusOK, gin.H{
		"hospitals": hospitals,
		"list":      lines,
		"count":     len(hospitals),
	})
}
