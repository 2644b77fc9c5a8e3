package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/freightlink/profile-api/internal/config"
	"github.com/freightlink/profile-api/internal/models"
	"github.com/freightlink/profile-api/internal/observability"
	"github.com/freightlink/profile-api/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

var (
	pincodeOnce    sync.Once
	pincodeService *services.PincodeService
)

// getPincodeService lazily builds the shared pincode service; it must not be
// constructed before config is loaded
func getPincodeService() *services.PincodeService {
	pincodeOnce.Do(func() {
		pincodeService = services.NewPincodeService()
	})
	return pincodeService
}

// GetDriverProfile godoc
// @Summary Get driver profile
// @Description Returns the canonical driver profile, normalized from the stored raw record
// @Tags profile
// @Produce json
// @Param id path string true "Driver ID"
// @Success 200 {object} models.DriverProfile
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /drivers/{id}/profile [get]
func GetDriverProfile(c *gin.Context) {
	driverID := c.Param("id")

	profile, err := services.NewProfileService().GetProfile(c.Request.Context(), driverID)
	if err != nil {
		if err == models.ErrProfileNotFound {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: userMessage("", err, "Driver profile not found"),
			})
			return
		}
		observability.Logger().Error("failed to load driver profile",
			zap.String("driver_id", observability.MaskDriverID(driverID)),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: userMessage("", nil, "Failed to load driver profile"),
		})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateDriverProfile godoc
// @Summary Update driver profile
// @Description Applies canonical field updates; multi-select fields use toggle semantics
// @Tags profile
// @Accept json
// @Produce json
// @Param id path string true "Driver ID"
// @Param data body models.ProfileUpdateInput true "Profile updates"
// @Success 200 {object} models.DriverProfile
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /drivers/{id}/profile [put]
func UpdateDriverProfile(c *gin.Context) {
	driverID := c.Param("id")

	var input models.ProfileUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	profile, err := services.NewProfileService().UpdateProfile(c.Request.Context(), driverID, input)
	if err != nil {
		observability.Logger().Error("failed to update driver profile",
			zap.String("driver_id", observability.MaskDriverID(driverID)),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: userMessage("", nil, "Failed to update driver profile"),
		})
		return
	}

	// Pincode edits arrive one keystroke at a time; the debounced lookup
	// backfills city/state once the user pauses.
	if input.Pincode != nil && *input.Pincode != "" {
		backfillCityState(driverID, *input.Pincode)
	}

	c.JSON(http.StatusOK, profile)
}

// backfillCityState resolves the pincode after the debounce delay and writes
// the resolved city/state onto the stored profile
func backfillCityState(driverID, pincode string) {
	getPincodeService().LookupDebounced(driverID, pincode, func(result *services.PincodeResult, err error) {
		if err != nil || result == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_, updateErr := config.MongoDB.Collection(config.AppConfig.DriverProfileCollection).UpdateOne(
			ctx,
			bson.M{"driver_id": driverID},
			bson.M{"$set": bson.M{"city": result.City, "state": result.State}},
		)
		if updateErr != nil {
			observability.Logger().Warn("failed to backfill city/state",
				zap.String("driver_id", observability.MaskDriverID(driverID)),
				zap.Error(updateErr))
			return
		}
		if err := services.NewCacheService().InvalidateProfile(ctx, driverID); err != nil {
			observability.Logger().Warn("failed to invalidate profile cache", zap.Error(err))
		}
	})
}

// SubmitDriverProfile godoc
// @Summary Submit driver profile
// @Description Returns the wire form the submission endpoint receives: repeated key[] entries for array fields, scalars unchanged, files only when newly picked
// @Tags profile
// @Produce json
// @Param id path string true "Driver ID"
// @Success 200 {object} map[string][]string
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /drivers/{id}/profile/submit [post]
func SubmitDriverProfile(c *gin.Context) {
	driverID := c.Param("id")

	svc := services.NewProfileService()
	profile, err := svc.GetProfile(c.Request.Context(), driverID)
	if err != nil {
		if err == models.ErrProfileNotFound {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: userMessage("", err, "Driver profile not found"),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: userMessage("", nil, "Failed to load driver profile"),
		})
		return
	}

	c.JSON(http.StatusOK, svc.WireForm(profile))
}

// LookupPincode godoc
// @Summary Look up a pincode
// @Description Resolves a postal pincode to city and state via the upstream postal API
// @Tags lookup
// @Produce json
// @Param pincode path string true "Postal pincode"
// @Success 200 {object} services.PincodeResult
// @Failure 502 {object} ErrorResponse
// @Router /lookup/pincode/{pincode} [get]
func LookupPincode(c *gin.Context) {
	pincode := c.Param("pincode")

	result, err := getPincodeService().Lookup(c.Request.Context(), pincode)
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{
			Error: userMessage("", err, "Pincode lookup failed"),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
