package handlers

import (
	"fmt"
	"net/http"

	"facturador/internal/adapter/export"
	"facturador/internal/usecase"
	"facturador/pkg"

	"github.com/gin-gonic/gin"
)

var errUnknownExportFormat = pkg.NewDomainErrorSimple("UNKNOWN_EXPORT_FORMAT", "Unknown export format", http.StatusBadRequest)

// ExportHandler serves invoice downloads in the four supported encodings.
//
// It reads the stored (already computed) invoice and hands it straight to the
// renderer; it never triggers a recomputation.

type ExportHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewExportHandler(uc usecase.IInvoiceUseCase) *ExportHandler {
	return &ExportHandler{usecase: uc}
}

// ExportInvoice renders the invoice in the format given by the path parameter
// (pdf, xml, xlsx or csv) and serves it as an attachment named
// Invoice_<series>-<folio>.<ext>.
func (h *ExportHandler) ExportInvoice(c *gin.Context) {
	format, err := export.ParseFormat(c.Param("format"))
	if err != nil {
		c.JSON(errUnknownExportFormat.HTTPStatus, errUnknownExportFormat.ToHTTPError())
		return
	}

	inv, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	doc, err := export.Render(format, inv)
	if err != nil {
		appErr := pkg.NewDomainError("EXPORT_FAILED", "Export rendering failed", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, doc.ContentType, doc.Data)
}
