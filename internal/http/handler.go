package http

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kyhorne/coload/internal/checkout"
	"github.com/kyhorne/coload/internal/domain/dto"
	"github.com/kyhorne/coload/internal/domain/model"
	"github.com/kyhorne/coload/internal/i18n"
	"github.com/kyhorne/coload/internal/metrics"
	"github.com/kyhorne/coload/internal/middleware"
	"github.com/kyhorne/coload/internal/service"
)

// Handler provides HTTP handlers for the pricing and checkout routes.
type Handler struct {
	validator *service.Validator
	pricer    service.PriceCalculator
	carts     *service.CartBuilder
	checkout  service.CheckoutStarter
	audit     service.CheckoutAuditService
	matrix    model.PriceMatrix
	limits    model.PricingLimits
}

// NewHandler creates a new Handler instance. The audit service may be
// nil when the audit trail is disabled.
func NewHandler(
	validator *service.Validator,
	pricer service.PriceCalculator,
	carts *service.CartBuilder,
	starter service.CheckoutStarter,
	audit service.CheckoutAuditService,
	matrix model.PriceMatrix,
	limits model.PricingLimits,
) *Handler {
	return &Handler{
		validator: validator,
		pricer:    pricer,
		carts:     carts,
		checkout:  starter,
		audit:     audit,
		matrix:    matrix,
		limits:    limits,
	}
}

// Quote handles POST /api/quote requests.
//
// @Summary      Price a subscription
// @Description  Validates the form values and computes the subscription price for the selected term, together with the yearly-vs-monthly savings percentage. Invalid field values are returned as per-field messages with a zero contribution, not as a request failure, so the form can price partially-typed input.
// @Tags         Pricing
// @Accept       json
// @Produce      json
// @Param        request body dto.QuoteRequest true "Form values"
// @Success      200 {object} dto.SuccessResponse "Quote with field errors"
// @Failure      400 {object} dto.ErrorResponse "Malformed body or unknown term"
// @Failure      429 {object} dto.ErrorResponse "Too many requests"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/quote [post]
func (h *Handler) Quote(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.QuoteRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationTerm, err)
		return
	}

	start := time.Now()
	values := req.FormValues()
	formErrs := h.validator.Validate(values)
	total := h.pricer.Quote(values, formErrs)
	savings := h.pricer.Savings(values)

	status := "valid"
	auditStatus := "ok"
	if !formErrs.Empty() {
		status = "invalid"
		auditStatus = "invalid"
	}
	metrics.RecordQuote(time.Since(start), status)
	h.recordAudit(c, "quote", values, total, 0, "", auditStatus, "")

	resp := dto.QuoteResponse{
		Total: total,
		Valid: formErrs.Empty(),
	}
	if !formErrs.Empty() {
		resp.Errors = formErrs.Fields()
	}
	if !math.IsNaN(savings) {
		resp.SavingsPercent = &savings
	}

	builder.SuccessOK(resp)
}

// CreateCheckoutSession handles POST /api/checkout-session requests.
//
// @Summary      Start checkout
// @Description  Re-validates the form values, builds the cart (one line per qualifying storage category), and creates a checkout session with the payment provider. The response carries the session id and hosted payment URL for the redirect.
// @Tags         Checkout
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer session token (required if auth enabled)"
// @Param        request body dto.CheckoutSessionRequest true "Form values to check out"
// @Success      200 {object} dto.SuccessResponse "Created session"
// @Failure      400 {object} dto.ErrorResponse "Invalid form values or empty cart"
// @Failure      401 {object} dto.ErrorResponse "Sign-in required"
// @Failure      429 {object} dto.ErrorResponse "Too many requests"
// @Failure      502 {object} dto.ErrorResponse "Payment provider failure"
// @Router       /api/checkout-session [post]
func (h *Handler) CreateCheckoutSession(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.CheckoutSessionRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationTerm, err)
		return
	}

	values := req.FormValues()
	formErrs := h.validator.Validate(values)
	if !formErrs.Empty() {
		h.recordAudit(c, "checkout_session", values, 0, 0, "", "invalid", "")
		builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyFormInvalid, nil, formErrs.Fields())
		return
	}

	cart := h.carts.Build(values, h.limits)
	if cart.Empty() {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyEmptyCart, nil)
		return
	}

	total := h.pricer.Quote(values, formErrs)

	start := time.Now()
	session, err := h.checkout.CreateSession(c.Request.Context(), cart)
	duration := time.Since(start)
	if err != nil {
		metrics.RecordCheckoutSession(duration, "failed")
		h.recordAudit(c, "checkout_session", values, total, len(cart.Items), "", "failed", err.Error())

		status := http.StatusBadGateway
		if errors.Is(err, checkout.ErrEmptyCart) {
			status = http.StatusBadRequest
		}
		builder.Error(status, i18n.ErrKeyCheckoutFailed, err)
		return
	}

	metrics.RecordCheckoutSession(duration, "ok")
	h.recordAudit(c, "checkout_session", values, total, len(cart.Items), session.ID, "ok", "")

	builder.SuccessOK(dto.CheckoutSessionResponse{
		SessionID: session.ID,
		URL:       session.URL,
		ItemCount: len(cart.Items),
	})
}

// GetRates handles GET /api/rates requests.
//
// @Summary      Rate table
// @Description  Returns the active rate table, validation limits, and the yearly savings percent for rendering the subscription form. Loaded once at startup and never mutated at runtime.
// @Tags         Pricing
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Rates, limits, and savings metadata"
// @Router       /api/rates [get]
func (h *Handler) GetRates(c *gin.Context) {
	payload := gin.H{
		"matrix": h.matrix,
		"limits": h.limits,
	}

	// Savings on a unit slabbed quote is the rate table's bulk discount.
	reference := model.FormValues{Term: model.TermMonthly, Slabbed: "1"}
	if savings := h.pricer.Savings(reference); !math.IsNaN(savings) {
		payload["yearly_savings_percent"] = savings
	}

	NewResponseBuilder(c).SuccessOK(payload)
}

// GetAuditLogs handles GET /api/logs requests.
//
// @Summary      Audit trail
// @Description  Returns recorded quote and checkout-session activity, newest first, with optional filters. Available only when the audit trail is enabled.
// @Tags         Checkout
// @Produce      json
// @Param        Authorization header string false "Bearer session token (required if auth enabled)"
// @Param        action     query string false "Filter by action"     Enums(quote, checkout_session)
// @Param        status     query string false "Filter by outcome"    Enums(ok, invalid, failed)
// @Param        request_id query string false "Filter by request id"
// @Param        since      query string false "Look-back window, e.g. 24h"
// @Param        limit      query int    false "Page size (max 500)"  default(50)
// @Param        skip       query int    false "Records to skip"
// @Success      200 {object} dto.SuccessResponse "Audit entries with total"
// @Failure      401 {object} dto.ErrorResponse "Sign-in required"
// @Failure      503 {object} dto.ErrorResponse "Audit trail disabled"
// @Router       /api/logs [get]
func (h *Handler) GetAuditLogs(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if h.audit == nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyAuditDisabled, nil)
		return
	}

	q := model.CheckoutLogQuery{
		RequestID: c.Query("request_id"),
		Action:    c.Query("action"),
		Status:    c.Query("status"),
		Limit:     50,
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		if limit > 500 {
			limit = 500
		}
		q.Limit = limit
	}
	if skip, err := strconv.Atoi(c.Query("skip")); err == nil && skip > 0 {
		q.Skip = skip
	}
	if since, err := time.ParseDuration(c.Query("since")); err == nil && since > 0 {
		start := time.Now().Add(-since)
		q.StartTime = &start
	}

	ctx := c.Request.Context()
	entries, err := h.audit.Query(ctx, q)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	total, err := h.audit.Count(ctx, q)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	if entries == nil {
		entries = []*model.CheckoutLogEntry{}
	}

	builder.SuccessOK(dto.AuditLogsResponse{Entries: entries, Total: total})
}

// recordAudit writes a best-effort audit entry when the trail is enabled.
func (h *Handler) recordAudit(c *gin.Context, action string, values model.FormValues, total float64, itemCount int, sessionID, status, errMsg string) {
	if h.audit == nil {
		return
	}
	h.audit.RecordAsync(&model.CheckoutLogEntry{
		RequestID: middleware.GetRequestID(c),
		Action:    action,
		Term:      string(values.Term),
		Total:     total,
		ItemCount: itemCount,
		SessionID: sessionID,
		Status:    status,
		Error:     errMsg,
		IP:        c.ClientIP(),
	})
}
