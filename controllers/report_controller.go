package controllers

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/aaryaa4/civic-connectt/pkg/resp"
	"github.com/aaryaa4/civic-connectt/services"
	"github.com/aaryaa4/civic-connectt/utils"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	reportService *services.ReportService
	uploadDir     string
}

func NewReportController(service *services.ReportService, uploadDir string) *ReportController {
	return &ReportController{reportService: service, uploadDir: uploadDir}
}

// SafeFilename strips path-traversal segments and prefixes the current unix
// timestamp so repeated uploads of the same name do not overwrite each other.
func SafeFilename(now time.Time, original string) string {
	return fmt.Sprintf("%d_%s", now.Unix(), strings.ReplaceAll(original, "..", ""))
}

// POST /api/reports
// Multipart form: token, caption, latitude, longitude, category, is_emergency?, file
func (rc *ReportController) Create(c *gin.Context) {
	user := utils.CurrentUser(c)

	var req struct {
		Caption     string  `form:"caption" binding:"required"`
		Latitude    float64 `form:"latitude"`
		Longitude   float64 `form:"longitude"`
		Category    string  `form:"category" binding:"required"`
		IsEmergency bool    `form:"is_emergency"`
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

	filename := SafeFilename(time.Now(), file.Filename)
	savePath := filepath.Join(rc.uploadDir, filename)
	if err := c.SaveUploadedFile(file, savePath); err != nil {
		resp.ServerError(c, errors.New("cannot save file"))
		return
	}
	imageURL := "uploads/" + filename

	report, err := rc.reportService.CreateReport(
		user, req.Caption, imageURL,
		req.Latitude, req.Longitude,
		req.Category, req.IsEmergency,
	)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCategory) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, errors.New("cannot save report"))
		return
	}

	resp.Created(c, report)
}

// GET /api/reports?token=...
// Admins get every report (optionally ?community_id= scoped); residents get
// only their own.
func (rc *ReportController) List(c *gin.Context) {
	user := utils.CurrentUser(c)
	role := utils.CurrentRole(c)

	var communityID uint
	if v := c.Query("community_id"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			resp.BadRequest(c, "invalid community_id")
			return
		}
		communityID = uint(n)
	}

	reports, err := rc.reportService.ListFor(user, role, communityID)
	if err != nil {
		resp.ServerError(c, errors.New("cannot fetch reports"))
		return
	}
	resp.OK(c, reports)
}

// POST /api/reports/:id/status
// Form: new_status, token
func (rc *ReportController) UpdateStatus(c *gin.Context) {
	role := utils.CurrentRole(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.NotFound(c, services.ErrReportNotFound.Error())
		return
	}
	newStatus := c.PostForm("new_status")

	if err := rc.reportService.UpdateStatus(role, uint(id), newStatus); err != nil {
		switch {
		case errors.Is(err, services.ErrAdminOnly):
			resp.Forbidden(c, err.Error())
		case errors.Is(err, services.ErrReportNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrInvalidStatus), errors.Is(err, services.ErrInvalidTransition):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	c.JSON(200, gin.H{"message": "Status updated successfully", "new_status": newStatus})
}
