package controllers

import (
	"errors"

	"github.com/Misheck-bot/transport-system-sub001/pkg/resp"
	"github.com/Misheck-bot/transport-system-sub001/services"
	"github.com/Misheck-bot/transport-system-sub001/utils"

	"github.com/gin-gonic/gin"
)

type ECardController struct{ Svc *services.ECardService }

func NewECardController(svc *services.ECardService) *ECardController {
	return &ECardController{Svc: svc}
}

type IssueECardRequest struct {
	PaymentID uint `json:"paymentId" binding:"required"`
}

// POST /ecards. Needs a completed "E-Card Application" payment owned
// by the caller that no card has consumed yet.
func (e *ECardController) Issue(c *gin.Context) {
	var req IssueECardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	card, err := e.Svc.Issue(utils.CurrentUserID(c), utils.CurrentRole(c), req.PaymentID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPaymentInvalid):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrAlreadyIssued):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, card)
}

// GET /ecards
func (e *ECardController) List(c *gin.Context) {
	cards, err := e.Svc.ListMine(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cards)
}

// GET /ecards/:id
func (e *ECardController) Detail(c *gin.Context) {
	card, err := e.Svc.Get(utils.CurrentUserID(c), paramID(c))
	if err != nil {
		resp.NotFound(c, "e-card not found")
		return
	}
	resp.OK(c, card)
}
