package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/freightlink/profile-api/internal/models"
	"github.com/freightlink/profile-api/internal/observability"
	"github.com/freightlink/profile-api/internal/services"
	"github.com/freightlink/profile-api/internal/status"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListJobApplications godoc
// @Summary List applicants for a job
// @Description Returns applicant cards with driver tag and interview state resolved per record
// @Tags applications
// @Produce json
// @Param jobId path string true "Job ID"
// @Success 200 {array} services.ApplicantView
// @Failure 500 {object} ErrorResponse
// @Router /jobs/{jobId}/applications [get]
func ListJobApplications(c *gin.Context) {
	jobID := c.Param("jobId")

	views, err := services.NewApplicationService().ListByJob(c.Request.Context(), jobID, time.Now())
	if err != nil {
		observability.Logger().Error("failed to list applications",
			zap.String("job_id", jobID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: userMessage("", nil, "Failed to load applicants"),
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// ApplyToJob godoc
// @Summary Apply to a job
// @Description Creates a Pending application for a driver on a job posting
// @Tags applications
// @Accept json
// @Produce json
// @Param jobId path string true "Job ID"
// @Param data body models.ApplyInput true "Application details"
// @Success 201 {object} models.ApplicationRecord
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /jobs/{jobId}/applications [post]
func ApplyToJob(c *gin.Context) {
	jobID := c.Param("jobId")

	var input models.ApplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	record, err := services.NewApplicationService().Apply(c.Request.Context(), jobID, input)
	if err != nil {
		if err == models.ErrDuplicateApplication {
			c.JSON(http.StatusConflict, ErrorResponse{
				Error: userMessage("", err, "Already applied"),
			})
			return
		}
		observability.Logger().Error("failed to create application",
			zap.String("job_id", jobID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: userMessage("", nil, "Failed to apply"),
		})
		return
	}

	c.JSON(http.StatusCreated, record)
}

// DecideApplication godoc
// @Summary Decide an application
// @Description Moves a Pending application to Accepted or Rejected; the transition happens exactly once
// @Tags applications
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param data body models.DecisionInput true "Decision"
// @Success 200 {object} models.ApplicationRecord
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /applications/{id}/decision [put]
func DecideApplication(c *gin.Context) {
	id := c.Param("id")

	var input models.DecisionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	record, err := services.NewApplicationService().Decide(c.Request.Context(), id, input.Status)
	if err != nil {
		switch err {
		case models.ErrApplicationNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		case models.ErrApplicationDecided:
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			observability.Logger().Error("failed to decide application",
				zap.String("application_id", id),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: userMessage("", nil, "Failed to update application"),
			})
		}
		return
	}

	c.JSON(http.StatusOK, record)
}

// ScheduleInterview godoc
// @Summary Schedule an interview
// @Description Sets or reschedules the interview time of an accepted application
// @Tags applications
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param data body models.ScheduleInterviewInput true "Interview time"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /applications/{id}/interview [put]
func ScheduleInterview(c *gin.Context) {
	id := c.Param("id")

	var input models.ScheduleInterviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	_, err := services.NewApplicationService().ScheduleInterview(c.Request.Context(), id, input.InterviewAt, time.Now())
	if err != nil {
		var schedErr *status.ScheduleError
		switch {
		case err == models.ErrApplicationNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		case err == models.ErrApplicationNotAccepted, err == models.ErrInterviewAlreadyDue:
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		case errors.As(err, &schedErr):
			// Scheduling-time validity errors carry the user-facing message
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Error: userMessage("", schedErr, "Invalid interview time"),
			})
		default:
			observability.Logger().Error("failed to schedule interview",
				zap.String("application_id", id),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: userMessage("", nil, "Failed to schedule interview"),
			})
		}
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Interview scheduled successfully"})
}

// GetInterviewState godoc
// @Summary Get interview state
// @Description Returns the interview state derived from the wall clock at request time
// @Tags applications
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} status.InterviewInfo
// @Failure 404 {object} ErrorResponse
// @Router /applications/{id}/interview [get]
func GetInterviewState(c *gin.Context) {
	id := c.Param("id")

	record, err := services.NewApplicationService().Get(c.Request.Context(), id)
	if err != nil {
		if err == models.ErrApplicationNotFound {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: userMessage("", nil, "Failed to load application"),
		})
		return
	}

	c.JSON(http.StatusOK, status.ResolveInterviewState(time.Now(), record.InterviewAt))
}
