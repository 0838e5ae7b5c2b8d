package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Misheck-bot/transport-system-sub001/entity"
	"github.com/Misheck-bot/transport-system-sub001/pkg/resp"
	"github.com/Misheck-bot/transport-system-sub001/services"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AdminController struct {
	DB       *gorm.DB
	ECards   *services.ECardService
	Payments *services.PaymentService
	Trucks   *services.TruckService
}

func NewAdminController(db *gorm.DB, ecards *services.ECardService, payments *services.PaymentService, trucks *services.TruckService) *AdminController {
	return &AdminController{DB: db, ECards: ecards, Payments: payments, Trucks: trucks}
}

// GET /admin/dashboard. Live counts for the overview screen.
func (ac *AdminController) Dashboard(c *gin.Context) {
	db := ac.DB

	var totalDrivers, totalAgents, trucksPending, activeCards, pendingPayments, scansToday, activeAlerts int64

	if err := db.Model(&entity.User{}).Where("role = ?", entity.RoleDriver).Count(&totalDrivers).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if err := db.Model(&entity.User{}).Where("role = ?", entity.RoleAgent).Count(&totalAgents).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if err := db.Model(&entity.Truck{}).Where("status = ?", entity.TruckPendingVerification).Count(&trucksPending).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if err := db.Model(&entity.ECard{}).Where("status = ?", entity.ECardActive).Count(&activeCards).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if err := db.Model(&entity.Payment{}).Where("status = ?", entity.PaymentPending).Count(&pendingPayments).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	start := startOfDay(time.Now())
	if err := db.Model(&entity.EcardScan{}).Where("created_at >= ?", start).Count(&scansToday).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if err := db.Model(&entity.SecurityAlert{}).Where("status = ?", entity.AlertActive).Count(&activeAlerts).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalDrivers":    totalDrivers,
		"totalAgents":     totalAgents,
		"trucksPending":   trucksPending,
		"activeEcards":    activeCards,
		"pendingPayments": pendingPayments,
		"scansToday":      scansToday,
		"activeAlerts":    activeAlerts,
	})
}

// startOfDay is midnight of t's day in t's zone; the dashboard's
// "today" follows the server clock, not UTC.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// GET /admin/users?page=&limit=&role=
func (ac *AdminController) Users(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	q := ac.DB.Model(&entity.User{})
	if role := c.Query("role"); role != "" {
		q = q.Where("role = ?", role)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	var users []entity.User
	if err := q.Order("id DESC").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{"items": users, "total": total, "page": page, "limit": limit})
}

type AdminCreateUserRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role" binding:"required,oneof=driver agent admin"`
	BadgeNumber string `json:"badgeNumber"`
	BorderPost  string `json:"borderPost"`
	AccessLevel string `json:"accessLevel"`
}

// POST /admin/users. Unlike public registration, any role goes.
func (ac *AdminController) CreateUser(c *gin.Context) {
	var req AdminCreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	var count int64
	ac.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		resp.Conflict(c, "email already registered")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	user := entity.User{
		Email:       email,
		Password:    string(hashed),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Role:        req.Role,
		IsVerified:  true,
		Status:      entity.UserActive,
		BadgeNumber: req.BadgeNumber,
		BorderPost:  req.BorderPost,
		AccessLevel: req.AccessLevel,
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, user)
}

type AdminUpdateUserRequest struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	PhoneNumber *string `json:"phoneNumber"`
	Role        *string `json:"role" binding:"omitempty,oneof=driver agent admin"`
	IsVerified  *bool   `json:"isVerified"`
	Status      *string `json:"status" binding:"omitempty,oneof=active suspended flagged"`
}

// PATCH /admin/users/:id
func (ac *AdminController) UpdateUser(c *gin.Context) {
	var req AdminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = *req.PhoneNumber
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.IsVerified != nil {
		updates["is_verified"] = *req.IsVerified
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	res := ac.DB.Model(&entity.User{}).Where("id = ?", paramID(c)).Updates(updates)
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "user not found")
		return
	}

	var user entity.User
	ac.DB.First(&user, paramID(c))
	resp.OK(c, user)
}

// DELETE /admin/users/:id. Hard delete, unrecoverable.
func (ac *AdminController) DeleteUser(c *gin.Context) {
	res := ac.DB.Unscoped().Delete(&entity.User{}, paramID(c))
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// GET /admin/payments?page=&limit=&status=
func (ac *AdminController) ListPayments(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	payments, total, err := ac.Payments.Repo.FindPage(c.Query("status"), limit, (page-1)*limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": payments, "total": total, "page": page, "limit": limit})
}

type AdjudicatePaymentRequest struct {
	Status string `json:"status" binding:"required,oneof=completed failed"`
}

// PUT /admin/payments/:id. Manual resolution of a stuck pending
// payment; already-settled rows read as not found.
func (ac *AdminController) AdjudicatePayment(c *gin.Context) {
	var req AdjudicatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ac.Payments.Adjudicate(paramID(c), req.Status); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "no pending payment with that id")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"status": req.Status})
}

// GET /admin/trucks?status=
func (ac *AdminController) ListTrucks(c *gin.Context) {
	trucks, err := ac.Trucks.Repo.FindByStatus(c.Query("status"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, trucks)
}

// PATCH /admin/trucks/:id/verify
func (ac *AdminController) VerifyTruck(c *gin.Context) {
	affected, err := ac.Trucks.Repo.VerifyGuard(paramID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if affected == 0 {
		resp.NotFound(c, "no truck pending verification with that id")
		return
	}
	resp.OK(c, gin.H{"status": entity.TruckVerified})
}

// PATCH /admin/ecards/:id/approve
func (ac *AdminController) ApproveECard(c *gin.Context) {
	if err := ac.ECards.Approve(paramID(c)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "no e-card pending approval with that id")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"status": entity.ECardActive})
}

// GET /admin/scans/export. Spreadsheet of every recorded crossing.
func (ac *AdminController) ExportScans(c *gin.Context) {
	var scans []entity.EcardScan
	if err := ac.DB.Order("id DESC").Find(&scans).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	f := excelize.NewFile()
	sheet := "Sheet1"
	headers := []string{"ID", "Scanned At", "Border Post", "Type", "Status", "E-Card ID", "Driver ID", "Agent ID", "Truck ID", "Notes"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for row, s := range scans {
		truckID := ""
		if s.TruckID != nil {
			truckID = strconv.FormatUint(uint64(*s.TruckID), 10)
		}
		values := []any{
			s.ID, s.ScannedAt.Format(time.RFC3339), s.BorderPost, s.ScanType,
			s.Status, s.EcardID, s.DriverID, s.AgentID, truckID, s.Notes,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	filename := fmt.Sprintf("scans_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		resp.ServerError(c, err)
	}
}
