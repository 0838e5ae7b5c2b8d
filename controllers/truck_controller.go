package controllers

import (
	"errors"
	"strconv"

	"github.com/Misheck-bot/transport-system-sub001/pkg/resp"
	"github.com/Misheck-bot/transport-system-sub001/services"
	"github.com/Misheck-bot/transport-system-sub001/utils"

	"github.com/gin-gonic/gin"
)

type TruckController struct{ Svc *services.TruckService }

func NewTruckController(svc *services.TruckService) *TruckController {
	return &TruckController{Svc: svc}
}

type RegisterTruckRequest struct {
	PlateNumber string `json:"plateNumber" binding:"required"`
	Make        string `json:"make" binding:"required"`
	Model       string `json:"model" binding:"required"`
	Year        int    `json:"year"`
	CapacityKg  int64  `json:"capacityKg"`
}

// POST /trucks
func (t *TruckController) Register(c *gin.Context) {
	var req RegisterTruckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	truck, err := t.Svc.Register(utils.CurrentUserID(c), services.RegisterTruckInput{
		PlateNumber: req.PlateNumber,
		Make:        req.Make,
		Model:       req.Model,
		Year:        req.Year,
		CapacityKg:  req.CapacityKg,
	})
	if err != nil {
		if errors.Is(err, services.ErrDuplicatePlate) {
			resp.Conflict(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, truck)
}

// GET /trucks
func (t *TruckController) List(c *gin.Context) {
	trucks, err := t.Svc.ListMine(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, trucks)
}

// GET /trucks/:id
func (t *TruckController) Detail(c *gin.Context) {
	id := paramID(c)
	truck, err := t.Svc.Get(utils.CurrentUserID(c), id)
	if err != nil {
		resp.NotFound(c, "truck not found")
		return
	}
	resp.OK(c, truck)
}

type UpdateTruckRequest struct {
	PlateNumber *string `json:"plateNumber"`
	Make        *string `json:"make"`
	Model       *string `json:"model"`
	Year        *int    `json:"year"`
	CapacityKg  *int64  `json:"capacityKg"`
}

// PUT /trucks/:id
func (t *TruckController) Update(c *gin.Context) {
	var req UpdateTruckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.PlateNumber != nil {
		updates["plate_number"] = *req.PlateNumber
	}
	if req.Make != nil {
		updates["make"] = *req.Make
	}
	if req.Model != nil {
		updates["truck_model"] = *req.Model
	}
	if req.Year != nil {
		updates["year"] = *req.Year
	}
	if req.CapacityKg != nil {
		updates["capacity_kg"] = *req.CapacityKg
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	truck, err := t.Svc.Update(utils.CurrentUserID(c), paramID(c), updates)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "truck not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, truck)
}

// DELETE /trucks/:id
func (t *TruckController) Delete(c *gin.Context) {
	if err := t.Svc.Delete(utils.CurrentUserID(c), paramID(c)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "truck not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

func paramID(c *gin.Context) uint {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	return uint(id)
}
