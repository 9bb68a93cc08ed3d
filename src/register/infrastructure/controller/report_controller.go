package controller

import (
	"log"
	"net/http"

	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/register/application/usecase"

	"github.com/gin-gonic/gin"
)

// ReportController expone el historial de ventas del cajero
type ReportController struct {
	listSalesUC *usecase.ListSalesUseCase
}

// NewReportController crea una nueva instancia del controlador
func NewReportController(listSalesUC *usecase.ListSalesUseCase) *ReportController {
	return &ReportController{listSalesUC: listSalesUC}
}

// RegisterRoutes registra las rutas del controlador
func (c *ReportController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/sales", c.ListSales)

	log.Println("Rutas Reportes disponibles:")
	log.Println("  GET /api/v1/sales")
}

// ListSales retorna las ventas del usuario, más recientes primero
func (c *ReportController) ListSales(ctx *gin.Context) {
	if c.listSalesUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "sales history not available (store not configured)",
		})
		return
	}

	userID := ctx.GetHeader("X-User-ID")

	sales, err := c.listSalesUC.Execute(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       sales,
		"total_count": len(sales),
	})
}
