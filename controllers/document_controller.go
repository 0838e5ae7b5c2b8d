package controllers

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Misheck-bot/transport-system-sub001/pkg/resp"
	"github.com/Misheck-bot/transport-system-sub001/services"
	"github.com/Misheck-bot/transport-system-sub001/utils"

	"github.com/gin-gonic/gin"
)

type DocumentController struct{ Svc *services.DocumentService }

func NewDocumentController(svc *services.DocumentService) *DocumentController {
	return &DocumentController{Svc: svc}
}

// POST /documents (multipart: docType, truckId?, file)
func (d *DocumentController) Upload(c *gin.Context) {
	userID := utils.CurrentUserID(c)

	var req struct {
		DocType string `form:"docType" binding:"required"`
		TruckID *uint  `form:"truckId"`
	}
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		resp.BadRequest(c, "file is required")
		return
	}
	if file.Size > 10*1024*1024 {
		resp.BadRequest(c, "file exceeds 10MB limit")
		return
	}

	filename := fmt.Sprintf("doc_%d_%d%s", userID, time.Now().UnixNano(), filepath.Ext(file.Filename))
	savePath := filepath.Join("uploads", "documents", filename)
	if err := c.SaveUploadedFile(file, savePath); err != nil {
		resp.ServerError(c, err)
		return
	}

	doc, err := d.Svc.Create(userID, req.DocType, savePath, file.Header.Get("Content-Type"), file.Size, req.TruckID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, doc)
}

// GET /documents
func (d *DocumentController) List(c *gin.Context) {
	docs, err := d.Svc.ListMine(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, docs)
}

// DELETE /documents/:id
func (d *DocumentController) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if err := d.Svc.Delete(utils.CurrentUserID(c), uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "document not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
