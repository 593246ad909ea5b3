package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/digiration/digiration/internal/pkg/logger"
	"github.com/digiration/digiration/internal/pkg/middleware"
	"github.com/digiration/digiration/internal/pkg/models"
	"github.com/digiration/digiration/internal/utils"
	"github.com/digiration/digiration/services/rations"
)

// RationHandler handles HTTP requests for quota, stock, catalog and
// purchase operations
type RationHandler struct {
	rationUC rations.RationUC
}

// NewRationHandler creates a new ration handler
func NewRationHandler(rationUC rations.RationUC) *RationHandler {
	return &RationHandler{rationUC: rationUC}
}

// ListItems returns the active item catalog
func (h *RationHandler) ListItems(c echo.Context) error {
	items, err := h.rationUC.ListItems(c.Request().Context(), c.QueryParam("category"), c.QueryParam("search"))
	if err != nil {
		return h.mapRationError(c, err, "ListItems")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Items retrieved successfully", items)
}

// ListShops returns the active shop directory
func (h *RationHandler) ListShops(c echo.Context) error {
	shops, err := h.rationUC.ListShops(c.Request().Context(), c.QueryParam("city"), c.QueryParam("pincode"))
	if err != nil {
		return h.mapRationError(c, err, "ListShops")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Shops retrieved successfully", shops)
}

// GetMemberQuota returns the quota ledger for a family member. The
// member must belong to the caller's family.
func (h *RationHandler) GetMemberQuota(c echo.Context) error {
	memberID := c.Param("memberId")
	if memberID == "" {
		return utils.BadRequestResponse(c, utils.CodeMissingParameters, "Member ID is required")
	}

	quotas, summary, err := h.rationUC.GetMemberQuotas(c.Request().Context(), memberID, middleware.UserIDFromContext(c))
	if err != nil {
		return h.mapRationError(c, err, "GetMemberQuota")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Quota retrieved successfully", echo.Map{
		"quotas":  quotas,
		"summary": summary,
	})
}

// GetShopStock returns the stock ledger for a shop
func (h *RationHandler) GetShopStock(c echo.Context) error {
	shopID := c.Param("shopId")
	if shopID == "" {
		return utils.BadRequestResponse(c, utils.CodeMissingParameters, "Shop ID is required")
	}

	stock, summary, err := h.rationUC.GetShopStock(c.Request().Context(), shopID)
	if err != nil {
		return h.mapRationError(c, err, "GetShopStock")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Stock retrieved successfully", echo.Map{
		"stock":   stock,
		"summary": summary,
	})
}

// CheckAvailability answers whether the caller's member can buy the
// requested quantity at the shop
func (h *RationHandler) CheckAvailability(c echo.Context) error {
	itemID := c.QueryParam("itemId")
	shopID := c.QueryParam("shopId")
	quantityParam := c.QueryParam("quantity")
	if itemID == "" || shopID == "" || quantityParam == "" {
		return utils.BadRequestResponse(c, utils.CodeMissingParameters, "itemId, shopId and quantity are required")
	}

	quantity, err := strconv.ParseFloat(quantityParam, 64)
	if err != nil || quantity <= 0 {
		return utils.BadRequestResponse(c, utils.CodeValidationError, "quantity must be a positive number")
	}

	result, err := h.rationUC.CheckAvailability(c.Request().Context(), middleware.MemberIDFromContext(c), itemID, shopID, quantity)
	if err != nil {
		return h.mapRationError(c, err, "CheckAvailability")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Availability checked successfully", result)
}

// Purchase completes a purchase for the caller's member
func (h *RationHandler) Purchase(c echo.Context) error {
	var req models.PurchaseRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, utils.CodeValidationError, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, utils.CodeValidationError, "itemId, shopId and a positive quantity are required")
	}

	memberID := middleware.MemberIDFromContext(c)

	purchase, err := h.rationUC.Purchase(c.Request().Context(), memberID, &req)
	if err != nil {
		switch {
		case errors.Is(err, rations.ErrInsufficientQuota), errors.Is(err, rations.ErrInsufficientStock):
			return h.purchaseRejected(c, err, memberID, &req)
		default:
			return h.mapRationError(c, err, "Purchase")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Purchase completed successfully", purchase)
}

// purchaseRejected answers a business-rule refusal with the numbers the
// client needs to explain it: what remains of the quota and what the
// shop actually holds.
func (h *RationHandler) purchaseRejected(c echo.Context, cause error, memberID string, req *models.PurchaseRequest) error {
	details := echo.Map{}
	if result, err := h.rationUC.CheckAvailability(c.Request().Context(), memberID, req.ItemID, req.ShopID, req.Quantity); err == nil {
		details["remainingQuota"] = result.QuotaCheck.RemainingQuota
		details["availableQuantity"] = result.StockCheck.AvailableQuantity
	}

	if errors.Is(cause, rations.ErrInsufficientQuota) {
		return utils.ErrorResponseWithDetails(c, http.StatusBadRequest, utils.CodeInsufficientQuota, "Insufficient quota remaining", details)
	}
	return utils.ErrorResponseWithDetails(c, http.StatusBadRequest, utils.CodeInsufficientStock, "Insufficient stock at shop", details)
}

// mapRationError translates usecase sentinels into the client error
// contract. Unrecognized errors are logged and surfaced generically.
func (h *RationHandler) mapRationError(c echo.Context, err error, endpoint string) error {
	switch {
	case errors.Is(err, rations.ErrForbidden):
		return utils.ForbiddenResponse(c, "You can only access your own family's data")
	case errors.Is(err, rations.ErrShopNotFound):
		return utils.NotFoundResponse(c, utils.CodeShopNotFound, "Shop not found")
	case errors.Is(err, rations.ErrItemNotFound):
		return utils.NotFoundResponse(c, utils.CodeItemNotFound, "Ration item not found")
	case errors.Is(err, rations.ErrInsufficientQuota):
		return utils.BadRequestResponse(c, utils.CodeInsufficientQuota, "Insufficient quota remaining")
	case errors.Is(err, rations.ErrInsufficientStock):
		return utils.BadRequestResponse(c, utils.CodeInsufficientStock, "Insufficient stock at shop")
	case errors.Is(err, rations.ErrPaymentFailed), errors.Is(err, rations.ErrPaymentUnknown):
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, utils.CodePaymentFailed, "Payment could not be completed")
	default:
		logger.Error("Unhandled ration error",
			logger.ErrorField(err),
			logger.String("endpoint", endpoint))
		return utils.InternalServerErrorResponse(c, "")
	}
}
