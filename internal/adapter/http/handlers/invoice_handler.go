package handlers

import (
	"errors"
	"net/http"

	request "facturador/internal/adapter/http/dto/request"
	response "facturador/internal/adapter/http/dto/response"
	"facturador/internal/usecase"
	"facturador/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)

// InvoiceHandler handles the editor-facing invoice requests.
//
// Every save goes draft -> validation -> computation engine -> store, so the
// arithmetic invariants hold for anything a later GET or export sees.

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// SaveInvoice accepts a draft, computes it and upserts it.
func (h *InvoiceHandler) SaveInvoice(c *gin.Context) {
	var payload request.InvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	inv, err := h.usecase.SaveDraft(c.Request.Context(), payload.ToInvoice())
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInvoice(inv))
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	inv, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// ListInvoices returns the collection newest-first, optionally filtered by
// the "search" query parameter (receiver name, receiver tax id or folio).
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.usecase.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}

// StampInvoice attaches a locally fabricated fiscal stamp, once.
func (h *InvoiceHandler) StampInvoice(c *gin.Context) {
	inv, err := h.usecase.Stamp(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID),
		errors.Is(err, usecase.ErrMissingSeries),
		errors.Is(err, usecase.ErrMissingFolio),
		errors.Is(err, usecase.ErrMissingIssueDate),
		errors.Is(err, usecase.ErrMissingReceiverName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAlreadyStamped):
		return pkg.NewDomainErrorSimple("INVOICE_ALREADY_STAMPED", "Invoice already carries a fiscal stamp", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
