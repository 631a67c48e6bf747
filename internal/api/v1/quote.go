package v1

import (
	"net/http"

	"github.com/flexprice/clinicbilling/internal/api/dto"
	ierr "github.com/flexprice/clinicbilling/internal/errors"
	"github.com/flexprice/clinicbilling/internal/logger"
	"github.com/flexprice/clinicbilling/internal/service"
	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	quoteService service.QuoteService
	logger       *logger.Logger
}

func NewQuoteHandler(quoteService service.QuoteService, logger *logger.Logger) *QuoteHandler {
	return &QuoteHandler{
		quoteService: quoteService,
		logger:       logger,
	}
}

// @Summary Quote a purchase
// @Description Computes the amount breakdown, coupon, fee price and clinic metadata of a purchase. Nothing is charged.
// @Tags Quotes
// @Accept json
// @Produce json
// @Param quote body dto.QuoteRequest true "Quote request"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Failure 502 {object} ierr.ErrorResponse
// @Router /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.quoteService.Quote(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Compute an amount breakdown
// @Description Computes a breakdown from explicit amounts and percents
// @Tags Quotes
// @Accept json
// @Produce json
// @Param breakdown body dto.ComputeBreakdownRequest true "Breakdown request"
// @Success 200 {object} billing.AmountBreakdown
// @Failure 400 {object} ierr.ErrorResponse
// @Router /breakdowns [post]
func (h *QuoteHandler) ComputeBreakdown(c *gin.Context) {
	var req dto.ComputeBreakdownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.quoteService.ComputeBreakdown(req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
