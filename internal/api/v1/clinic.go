package v1

import (
	"net/http"

	"github.com/flexprice/clinicbilling/internal/api/dto"
	ierr "github.com/flexprice/clinicbilling/internal/errors"
	"github.com/flexprice/clinicbilling/internal/logger"
	"github.com/flexprice/clinicbilling/internal/service"
	"github.com/flexprice/clinicbilling/internal/validator"
	"github.com/gin-gonic/gin"
)

type ClinicHandler struct {
	clinicService service.ClinicService
	logger        *logger.Logger
}

func NewClinicHandler(clinicService service.ClinicService, logger *logger.Logger) *ClinicHandler {
	return &ClinicHandler{
		clinicService: clinicService,
		logger:        logger,
	}
}

// @Summary Resolve a clinic timezone
// @Description Resolves the IANA timezone of a clinic address. Unknown regions resolve to UTC.
// @Tags Clinics
// @Produce json
// @Param country query string false "ISO country code"
// @Param state query string false "State or region code"
// @Param city query string false "City, accepted and ignored"
// @Success 200 {object} dto.TimezoneResponse
// @Router /timezones [get]
func (h *ClinicHandler) ResolveTimezone(c *gin.Context) {
	c.JSON(http.StatusOK, h.clinicService.ResolveTimezone(c.Query("country"), c.Query("state")))
}

// @Summary Check a desired start date
// @Description Reports whether a date falls within the next two calendar months
// @Tags Clinics
// @Produce json
// @Param date query string true "ISO-8601 date"
// @Success 200 {object} dto.DateWindowResponse
// @Router /dates/window [get]
func (h *ClinicHandler) CheckDateWindow(c *gin.Context) {
	c.JSON(http.StatusOK, h.clinicService.CheckDateWindow(c.Query("date")))
}

// @Summary Build clinic metadata
// @Description Builds the metadata stamped on catalog customers, subscriptions and invoices
// @Tags Clinics
// @Accept json
// @Produce json
// @Param clinic body dto.BuildClinicMetadataRequest true "Clinic"
// @Success 200 {object} dto.ClinicMetadataResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /clinic-metadata [post]
func (h *ClinicHandler) BuildClinicMetadata(c *gin.Context) {
	var req dto.BuildClinicMetadataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}
	if err := validator.ValidateRequest(req); err != nil {
		c.Error(err)
		return
	}

	md := h.clinicService.BuildClinicMetadata(req)
	c.JSON(http.StatusOK, dto.ClinicMetadataResponse{
		Metadata:       md,
		StripeMetadata: md.ToStripeMetadata(),
	})
}
