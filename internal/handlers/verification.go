package handlers

import (
	"net/http"

	"github.com/freightlink/profile-api/internal/models"
	"github.com/freightlink/profile-api/internal/observability"
	"github.com/freightlink/profile-api/internal/services"
	"github.com/freightlink/profile-api/internal/status"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VerificationView is the verification screen state: the record, the
// derived status, the single action offered, and both checklists.
type VerificationView struct {
	Record        models.VerificationRecord `json:"record"`
	OverallStatus models.VerificationStatus `json:"overall_status"`
	Action        status.Action             `json:"action"`
	IsVerified    bool                      `json:"is_verified"`
	Checklist     status.Checklist          `json:"checklist"`
}

// GetVerification godoc
// @Summary Get verification state
// @Description Returns the derived verification status and the resolved screen action
// @Tags verification
// @Produce json
// @Param id path string true "Driver ID"
// @Success 200 {object} VerificationView
// @Failure 500 {object} ErrorResponse
// @Router /drivers/{id}/verification [get]
func GetVerification(c *gin.Context) {
	driverID := c.Param("id")

	record, err := services.NewVerificationService().Get(c.Request.Context(), driverID)
	if err != nil {
		observability.Logger().Error("failed to load verification record",
			zap.String("driver_id", observability.MaskDriverID(driverID)),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: userMessage("", nil, "Failed to load verification status"),
		})
		return
	}

	c.JSON(http.StatusOK, VerificationView{
		Record:        *record,
		OverallStatus: status.DeriveOverallStatus(*record),
		Action:        status.ResolveVerificationAction(*record),
		IsVerified:    status.IsVerified(*record),
		Checklist:     status.VerificationChecklist(*record),
	})
}

// PayVerification godoc
// @Summary Record verification payment
// @Description Marks the verification payment as made and moves the case forward
// @Tags verification
// @Accept json
// @Produce json
// @Param id path string true "Driver ID"
// @Success 200 {object} VerificationView
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /drivers/{id}/verification/payment [post]
func PayVerification(c *gin.Context) {
	driverID := c.Param("id")

	var input struct {
		Amount float64 `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	record, err := services.NewVerificationService().MarkPaid(c.Request.Context(), driverID, input.Amount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: userMessage("", nil, "Failed to record payment"),
		})
		return
	}

	c.JSON(http.StatusOK, VerificationView{
		Record:        *record,
		OverallStatus: record.OverallStatus,
		Action:        status.ResolveVerificationAction(*record),
		IsVerified:    status.IsVerified(*record),
		Checklist:     status.VerificationChecklist(*record),
	})
}

// UploadVerificationDocument godoc
// @Summary Register a verification document
// @Description Records one uploaded document; collection completes when every required type is present
// @Tags verification
// @Accept json
// @Produce json
// @Param id path string true "Driver ID"
// @Param data body models.DocumentUploadInput true "Document upload"
// @Success 200 {object} VerificationView
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /drivers/{id}/verification/documents [post]
func UploadVerificationDocument(c *gin.Context) {
	driverID := c.Param("id")

	var input models.DocumentUploadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	record, err := services.NewVerificationService().RegisterDocument(c.Request.Context(), driverID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: userMessage("", nil, "Failed to register document"),
		})
		return
	}

	c.JSON(http.StatusOK, VerificationView{
		Record:        *record,
		OverallStatus: record.OverallStatus,
		Action:        status.ResolveVerificationAction(*record),
		IsVerified:    status.IsVerified(*record),
		Checklist:     status.VerificationChecklist(*record),
	})
}
