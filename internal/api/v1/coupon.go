package v1

import (
	"net/http"

	"github.com/flexprice/clinicbilling/internal/logger"
	"github.com/flexprice/clinicbilling/internal/service"
	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	couponService service.CouponService
	logger        *logger.Logger
}

func NewCouponHandler(couponService service.CouponService, logger *logger.Logger) *CouponHandler {
	return &CouponHandler{
		couponService: couponService,
		logger:        logger,
	}
}

// @Summary Resolve a promo code
// @Description Resolves a promo code to its coupon and reports whether the code was empty, unknown or resolved
// @Tags Coupons
// @Produce json
// @Param code query string false "Promo code"
// @Success 200 {object} dto.CouponResolutionResponse
// @Failure 502 {object} ierr.ErrorResponse
// @Router /coupons/resolve [get]
func (h *CouponHandler) ResolveCoupon(c *gin.Context) {
	resp, err := h.couponService.ResolveCouponCode(c.Request.Context(), c.Query("code"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
