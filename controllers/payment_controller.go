package controllers

import (
	"errors"

	"github.com/Misheck-bot/transport-system-sub001/pkg/resp"
	"github.com/Misheck-bot/transport-system-sub001/services"
	"github.com/Misheck-bot/transport-system-sub001/utils"

	"github.com/gin-gonic/gin"
)

type PaymentController struct{ Svc *services.PaymentService }

func NewPaymentController(svc *services.PaymentService) *PaymentController {
	return &PaymentController{Svc: svc}
}

type InitiatePaymentRequest struct {
	Type   string `json:"type" binding:"required"`
	Amount string `json:"amount" binding:"required"` // e.g. "K500"
	Method string `json:"method" binding:"required"`
}

// POST /payments. Settlement is asynchronous; poll the payment to
// see the outcome.
func (p *PaymentController) Create(c *gin.Context) {
	var req InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	payment, err := p.Svc.Initiate(utils.CurrentUserID(c), services.InitiatePaymentInput{
		Type:   req.Type,
		Amount: req.Amount,
		Method: req.Method,
	})
	if err != nil {
		if errors.Is(err, utils.ErrBadAmount) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, payment)
}

// GET /payments
func (p *PaymentController) List(c *gin.Context) {
	payments, err := p.Svc.ListMine(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, payments)
}

// GET /payments/:id
func (p *PaymentController) Detail(c *gin.Context) {
	payment, err := p.Svc.Get(utils.CurrentUserID(c), paramID(c))
	if err != nil {
		resp.NotFound(c, "payment not found")
		return
	}
	resp.OK(c, payment)
}
