package controllers

import (
	"errors"
	"strconv"

	"github.com/aaryaa4/civic-connectt/pkg/resp"
	"github.com/aaryaa4/civic-connectt/services"
	"github.com/aaryaa4/civic-connectt/utils"

	"github.com/gin-gonic/gin"
)

type FeedbackController struct {
	feedbackService *services.FeedbackService
}

func NewFeedbackController(service *services.FeedbackService) *FeedbackController {
	return &FeedbackController{feedbackService: service}
}

// POST /api/reports/:id/feedback
// Form: rating, comment?, token
func (fc *FeedbackController) Submit(c *gin.Context) {
	user := utils.CurrentUser(c)

	reportID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.Forbidden(c, services.ErrNotReportOwner.Error())
		return
	}

	rating, err := strconv.Atoi(c.PostForm("rating"))
	if err != nil {
		resp.BadRequest(c, "rating must be an integer")
		return
	}
	comment := c.PostForm("comment")

	if _, err := fc.feedbackService.Submit(user, uint(reportID), rating, comment); err != nil {
		switch {
		case errors.Is(err, services.ErrNotReportOwner):
			resp.Forbidden(c, err.Error())
		case errors.Is(err, services.ErrReportNotResolved), errors.Is(err, services.ErrFeedbackExists):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	c.JSON(200, gin.H{"message": "Feedback submitted successfully."})
}
