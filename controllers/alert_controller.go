package controllers

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/Misheck-bot/transport-system-sub001/pkg/resp"
	"github.com/Misheck-bot/transport-system-sub001/services"
	"github.com/Misheck-bot/transport-system-sub001/utils"
	"github.com/Misheck-bot/transport-system-sub001/ws"

	"github.com/gin-gonic/gin"
)

type AlertController struct {
	Svc *services.AlertService
	Hub *ws.AlertHub
}

func NewAlertController(svc *services.AlertService, hub *ws.AlertHub) *AlertController {
	return &AlertController{Svc: svc, Hub: hub}
}

// POST /agent/alerts (multipart: title, message, severity?, driverId?,
// truckId?, photo?)
func (a *AlertController) Create(c *gin.Context) {
	agentID := utils.CurrentUserID(c)

	var req struct {
		Title    string `form:"title" binding:"required"`
		Message  string `form:"message"`
		Severity string `form:"severity"`
		DriverID *uint  `form:"driverId"`
		TruckID  *uint  `form:"truckId"`
	}
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	photoPath := ""
	if file, err := c.FormFile("photo"); err == nil {
		filename := fmt.Sprintf("alert_%d_%d%s", agentID, time.Now().UnixNano(), filepath.Ext(file.Filename))
		savePath := filepath.Join("uploads", "alerts", filename)
		if err := c.SaveUploadedFile(file, savePath); err != nil {
			resp.ServerError(c, err)
			return
		}
		photoPath = savePath
	}

	alert, err := a.Svc.Raise(agentID, services.RaiseAlertInput{
		Title:    req.Title,
		Message:  req.Message,
		Severity: req.Severity,
		DriverID: req.DriverID,
		TruckID:  req.TruckID,
	}, photoPath)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	a.Hub.Broadcast(alert)
	resp.Created(c, alert)
}

// GET /agent/alerts
func (a *AlertController) List(c *gin.Context) {
	alerts, err := a.Svc.ListActive()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, alerts)
}
