package routes

import (
	"facturador/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathInvoices = "/invoices"
)

func addInvoicingRoutes(rg *gin.RouterGroup, invoiceHandler *handlers.InvoiceHandler, exportHandler *handlers.ExportHandler) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", invoiceHandler.SaveInvoice)
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.GET("/:id", invoiceHandler.GetInvoice)
		invoices.POST("/:id/stamp", invoiceHandler.StampInvoice)
		invoices.GET("/:id/export/:format", exportHandler.ExportInvoice)
	}
}
