// Package http provides HTTP handlers for My Number operations.
package http

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/allisson/mynumber/internal/httputil"
	"github.com/allisson/mynumber/internal/mynumber/domain"
	"github.com/allisson/mynumber/internal/mynumber/http/dto"
	"github.com/allisson/mynumber/internal/mynumber/usecase"
	customValidation "github.com/allisson/mynumber/internal/validation"
)

// MyNumberHandler handles HTTP requests for My Number operations.
type MyNumberHandler struct {
	useCase          usecase.MyNumberUseCase
	generateMaxCount int
	rangeMaxResults  int
	logger           *slog.Logger
}

// NewMyNumberHandler creates a new handler. generateMaxCount bounds the generate count and
// rangeMaxResults bounds how many numbers a range response may hold.
func NewMyNumberHandler(
	useCase usecase.MyNumberUseCase,
	generateMaxCount int,
	rangeMaxResults int,
	logger *slog.Logger,
) *MyNumberHandler {
	return &MyNumberHandler{
		useCase:          useCase,
		generateMaxCount: generateMaxCount,
		rangeMaxResults:  rangeMaxResults,
		logger:           logger,
	}
}

// bindDigits decodes and validates a digit array body, writing the error response on failure.
func (h *MyNumberHandler) bindDigits(c *gin.Context) (dto.DigitsRequest, bool) {
	var req dto.DigitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return req, false
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return req, false
	}
	return req, true
}

// VerifyHandler reports whether 12 digits carry a correct check digit.
// POST /v1/mynumber/verify
// Returns 200 OK with {"valid": bool}, 422 when the array is not 12 digits in 0-9.
func (h *MyNumberHandler) VerifyHandler(c *gin.Context) {
	req, ok := h.bindDigits(c)
	if !ok {
		return
	}

	valid, err := h.useCase.Verify(c.Request.Context(), req.Digits)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.VerifyResponse{Valid: valid})
}

// CheckDigitHandler computes the check digit for 11 digits.
// POST /v1/mynumber/check-digit
func (h *MyNumberHandler) CheckDigitHandler(c *gin.Context) {
	req, ok := h.bindDigits(c)
	if !ok {
		return
	}

	cd, err := h.useCase.CheckDigit(c.Request.Context(), req.Digits)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.CheckDigitResponse{CheckDigit: cd})
}

// CompleteHandler appends the check digit to 11 digits.
// POST /v1/mynumber/complete
func (h *MyNumberHandler) CompleteHandler(c *gin.Context) {
	req, ok := h.bindDigits(c)
	if !ok {
		return
	}

	n, err := h.useCase.Complete(c.Request.Context(), req.Digits)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapNumberToResponse(n))
}

// GenerateHandler returns random valid numbers.
// GET /v1/mynumber/generate?count=N - count defaults to 1.
func (h *MyNumberHandler) GenerateHandler(c *gin.Context) {
	var req dto.GenerateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(h.generateMaxCount); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	seq, err := h.useCase.Generate(c.Request.Context(), req.Count)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Bounded by generateMaxCount, so collecting is safe.
	numbers := slices.Collect(seq)
	if err := c.Request.Context().Err(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapNumbersToResponse(numbers))
}

// ParseHandler parses a number in any accepted text form.
// POST /v1/mynumber/parse
func (h *MyNumberHandler) ParseHandler(c *gin.Context) {
	var req dto.ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	n, err := h.useCase.Parse(c.Request.Context(), req.Value)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapNumberToResponse(n))
}

// FormatHandler parses a number and renders it in the requested mode.
// POST /v1/mynumber/format
func (h *MyNumberHandler) FormatHandler(c *gin.Context) {
	var req dto.FormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	formatted, err := h.useCase.Format(c.Request.Context(), req.Value, domain.FormatMode(req.Mode))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.FormatResponse{Formatted: formatted})
}

// RangeHandler enumerates the valid numbers between two bounds.
// POST /v1/mynumber/range
// The result holds at most limit numbers (bounded by the configured maximum); truncated
// reports whether the range had more.
func (h *MyNumberHandler) RangeHandler(c *gin.Context) {
	var req dto.RangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	limit := req.Limit
	if limit == 0 || limit > h.rangeMaxResults {
		limit = h.rangeMaxResults
	}

	seq, candidates, err := h.useCase.Range(c.Request.Context(), req.Min, req.Max, domain.RangeMode(req.Mode))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	if candidates > uint64(limit) {
		h.logger.LogAttrs(c, slog.LevelInfo, "range exceeds limit, walk may be truncated",
			slog.String("mode", req.Mode),
			slog.String("min", req.Min),
			slog.String("max", req.Max),
			slog.Uint64("candidates", candidates),
			slog.Int("limit", limit),
		)
	}

	resp := dto.RangeResponse{Numbers: make([]string, 0)}
	for n := range seq {
		if len(resp.Numbers) == limit {
			resp.Truncated = true
			break
		}
		resp.Numbers = append(resp.Numbers, n.String())
	}
	resp.Count = len(resp.Numbers)

	c.JSON(http.StatusOK, resp)
}
