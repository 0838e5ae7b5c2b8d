package controllers

import (
	"github.com/Misheck-bot/transport-system-sub001/pkg/resp"
	"github.com/Misheck-bot/transport-system-sub001/services"

	"github.com/gin-gonic/gin"
)

type FeeController struct{}

func NewFeeController() *FeeController { return &FeeController{} }

// GET /fees/estimate?origin=&destination=
func (f *FeeController) Estimate(c *gin.Context) {
	origin := c.Query("origin")
	destination := c.Query("destination")
	if origin == "" || destination == "" {
		resp.BadRequest(c, "origin and destination are required")
		return
	}

	fee, ok := services.EstimateRouteFee(origin, destination)
	if !ok {
		resp.NotFound(c, "no fee schedule for this route")
		return
	}
	resp.OK(c, fee)
}
