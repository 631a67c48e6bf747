package v1

import (
	"net/http"

	"github.com/flexprice/clinicbilling/internal/api/dto"
	ierr "github.com/flexprice/clinicbilling/internal/errors"
	"github.com/flexprice/clinicbilling/internal/logger"
	"github.com/flexprice/clinicbilling/internal/service"
	"github.com/gin-gonic/gin"
)

type FeePriceHandler struct {
	feePriceService service.FeePriceService
	logger          *logger.Logger
}

func NewFeePriceHandler(feePriceService service.FeePriceService, logger *logger.Logger) *FeePriceHandler {
	return &FeePriceHandler{
		feePriceService: feePriceService,
		logger:          logger,
	}
}

// @Summary Get or create a fee price
// @Description Returns the catalog price for a credit card fee amount, creating it when missing
// @Tags Fee Prices
// @Accept json
// @Produce json
// @Param fee_price body dto.GetOrCreateFeePriceRequest true "Fee price request"
// @Success 200 {object} dto.FeePriceResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 502 {object} ierr.ErrorResponse
// @Router /fee-prices [post]
func (h *FeePriceHandler) GetOrCreateFeePrice(c *gin.Context) {
	var req dto.GetOrCreateFeePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.feePriceService.GetOrCreate(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
