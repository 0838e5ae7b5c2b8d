package controllers

import (
	"errors"
	"strconv"

	"github.com/Misheck-bot/transport-system-sub001/pkg/resp"
	"github.com/Misheck-bot/transport-system-sub001/repository"
	"github.com/Misheck-bot/transport-system-sub001/services"
	"github.com/Misheck-bot/transport-system-sub001/utils"

	"github.com/gin-gonic/gin"
)

type AgentController struct {
	Scans *services.ScanService
	Users *repository.UserRepository
}

func NewAgentController(scans *services.ScanService, users *repository.UserRepository) *AgentController {
	return &AgentController{Scans: scans, Users: users}
}

type RecordScanRequest struct {
	EcardID    uint   `json:"ecardId" binding:"required"`
	DriverID   uint   `json:"driverId" binding:"required"`
	TruckID    *uint  `json:"truckId"`
	BorderPost string `json:"borderPost" binding:"required"`
	ScanType   string `json:"scanType" binding:"required,oneof=entry exit"`
	Notes      string `json:"notes"`
}

// POST /agent/scans
func (a *AgentController) RecordScan(c *gin.Context) {
	var req RecordScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	scan, err := a.Scans.Record(utils.CurrentUserID(c), services.RecordScanInput{
		EcardID:    req.EcardID,
		DriverID:   req.DriverID,
		TruckID:    req.TruckID,
		BorderPost: req.BorderPost,
		ScanType:   req.ScanType,
		Notes:      req.Notes,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidCard) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, scan)
}

// GET /agent/scans?limit=
func (a *AgentController) ListScans(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	scans, err := a.Scans.ListByAgent(utils.CurrentUserID(c), limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, scans)
}

type DriverStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active suspended flagged"`
}

// PATCH /agent/drivers/:id. A non-driver target reads as not found.
func (a *AgentController) UpdateDriverStatus(c *gin.Context) {
	var req DriverStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	affected, err := a.Users.UpdateDriverStatus(paramID(c), req.Status)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if affected == 0 {
		resp.NotFound(c, "driver not found")
		return
	}
	resp.OK(c, gin.H{"status": req.Status})
}
