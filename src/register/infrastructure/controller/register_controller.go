package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/register/application/request"
	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/register/application/usecase"
	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/register/domain/entity"
	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/shared/money"

	"github.com/gin-gonic/gin"
)

// RegisterController maneja las peticiones HTTP de la caja registradora.
// La identidad del cajero llega en el header X-User-ID (UUID provisto por
// el colaborador de autenticación externo).
type RegisterController struct {
	session         *entity.CashSession
	openRegisterUC  *usecase.OpenRegisterUseCase
	listMovementsUC *usecase.ListMovementsUseCase
}

// NewRegisterController crea una nueva instancia del controlador
func NewRegisterController(
	session *entity.CashSession,
	openRegisterUC *usecase.OpenRegisterUseCase,
	listMovementsUC *usecase.ListMovementsUseCase,
) *RegisterController {
	return &RegisterController{
		session:         session,
		openRegisterUC:  openRegisterUC,
		listMovementsUC: listMovementsUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *RegisterController) RegisterRoutes(router *gin.RouterGroup) {
	register := router.Group("/register")
	{
		register.POST("/open", c.OpenRegister)
		register.GET("/status", c.Status)
		register.GET("/movements", c.ListMovements)
	}

	log.Println("Rutas Register disponibles:")
	log.Println("  POST   /api/v1/register/open")
	log.Println("  GET    /api/v1/register/status")
	log.Println("  GET    /api/v1/register/movements")
}

// OpenRegister registra la apertura de caja del cajero actual
func (c *RegisterController) OpenRegister(ctx *gin.Context) {
	if c.openRegisterUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "register not available (store not configured)",
		})
		return
	}

	var req request.OpenRegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := ctx.GetHeader("X-User-ID")

	movement, err := c.openRegisterUC.Execute(ctx.Request.Context(), userID, req.Amount, req.Note)
	if err != nil {
		log.Printf("Error opening register: %v", err)
		ctx.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"movement_id": movement.ID,
		"amount":      money.Format(movement.Amount),
		"note":        movement.Note,
		"status":      c.session.Status(),
	})
}

// Status retorna el estado actual de la compuerta de caja
func (c *RegisterController) Status(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.session.Status())
}

// ListMovements lista el libro de caja del cajero actual
func (c *RegisterController) ListMovements(ctx *gin.Context) {
	if c.listMovementsUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "cash movements not available (store not configured)",
		})
		return
	}

	userID := ctx.GetHeader("X-User-ID")

	movements, err := c.listMovementsUC.Execute(ctx.Request.Context(), userID)
	if err != nil {
		log.Printf("Error listing cash movements: %v", err)
		ctx.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       movements,
		"total_count": len(movements),
	})
}

// statusForError mapea la taxonomía de errores a códigos HTTP:
// validación → 400, autenticación → 401, conflictos de estado → 409,
// todo lo demás (errores del store remoto) → 502 con el texto intacto.
func statusForError(err error) int {
	switch {
	case errors.Is(err, entity.ErrInvalidUser):
		return http.StatusUnauthorized
	case errors.Is(err, money.ErrInvalidAmount),
		errors.Is(err, entity.ErrEmptyCart),
		errors.Is(err, entity.ErrInvalidQuantity),
		errors.Is(err, entity.ErrInvalidPaymentMethod),
		errors.Is(err, entity.ErrInsufficientTender),
		errors.Is(err, entity.ErrInsufficientStock),
		errors.Is(err, entity.ErrLineNotFound):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrRegisterOpen),
		errors.Is(err, entity.ErrRegisterClosed),
		errors.Is(err, entity.ErrInvalidTransition),
		errors.Is(err, entity.ErrCommitInFlight):
		return http.StatusConflict
	default:
		return http.StatusBadGateway
	}
}
