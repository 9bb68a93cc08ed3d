package controller

import (
	"context"
	"log"
	"net/http"
	"strconv"

	catalogEntity "github.com/Jean-snt/SUPABASE-MOD-1-3/src/catalog/domain/entity"
	catalogPort "github.com/Jean-snt/SUPABASE-MOD-1-3/src/catalog/domain/port"
	catalogCache "github.com/Jean-snt/SUPABASE-MOD-1-3/src/catalog/infrastructure/cache"
	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/register/application/request"
	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/register/application/response"
	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/register/application/usecase"
	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/register/domain/entity"
	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/shared/money"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TerminalController maneja el terminal del mostrador: carrito, pantallas
// y cobro. Hay un solo terminal por instancia del servicio (una caja, un
// cajero); el Terminal serializa todas las acciones.
type TerminalController struct {
	terminal       *entity.Terminal
	session        *entity.CashSession
	registerSaleUC *usecase.RegisterSaleUseCase
	productRepo    catalogPort.ProductRepository
	snapshot       *catalogCache.CatalogSnapshot
}

// NewTerminalController crea una nueva instancia del controlador
func NewTerminalController(
	terminal *entity.Terminal,
	session *entity.CashSession,
	registerSaleUC *usecase.RegisterSaleUseCase,
	productRepo catalogPort.ProductRepository,
	snapshot *catalogCache.CatalogSnapshot,
) *TerminalController {
	return &TerminalController{
		terminal:       terminal,
		session:        session,
		registerSaleUC: registerSaleUC,
		productRepo:    productRepo,
		snapshot:       snapshot,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *TerminalController) RegisterRoutes(router *gin.RouterGroup) {
	terminal := router.Group("/terminal")
	{
		terminal.GET("", c.View)
		terminal.POST("/cart/items", c.AddItem)
		terminal.PUT("/cart/items/:product_id", c.SetQuantity)
		terminal.DELETE("/cart/items/:product_id", c.RemoveItem)
		terminal.POST("/checkout", c.Checkout)
		terminal.POST("/cancel", c.CancelPayment)
		terminal.POST("/pay", c.Pay)
		terminal.GET("/receipt", c.Receipt)
		terminal.POST("/new-order", c.NewOrder)
	}

	log.Println("Rutas Terminal disponibles:")
	log.Println("  GET    /api/v1/terminal")
	log.Println("  POST   /api/v1/terminal/cart/items")
	log.Println("  PUT    /api/v1/terminal/cart/items/:product_id")
	log.Println("  DELETE /api/v1/terminal/cart/items/:product_id")
	log.Println("  POST   /api/v1/terminal/checkout")
	log.Println("  POST   /api/v1/terminal/cancel")
	log.Println("  POST   /api/v1/terminal/pay  ⭐ (commit de venta)")
	log.Println("  GET    /api/v1/terminal/receipt")
	log.Println("  POST   /api/v1/terminal/new-order")
}

// View retorna el estado visible del terminal
func (c *TerminalController) View(ctx *gin.Context) {
	view := response.NewTerminalViewResponse(c.terminal, c.session.IsOpen())

	body := gin.H{
		"view":          view.View,
		"register_open": view.RegisterOpen,
		"cart":          view.Cart,
		"cart_total":    view.CartTotal,
		"item_count":    view.ItemCount,
	}
	if receipt, ok := c.terminal.Receipt(); ok {
		body["receipt"] = receipt
	}

	ctx.JSON(http.StatusOK, body)
}

// AddItem agrega un producto del catálogo al carrito
func (c *TerminalController) AddItem(ctx *gin.Context) {
	var req request.AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := c.resolveProduct(ctx.Request.Context(), req.ProductID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if err := c.terminal.AddProduct(*product); err != nil {
		ctx.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response.NewTerminalViewResponse(c.terminal, c.session.IsOpen()))
}

// SetQuantity fija la cantidad exacta de un renglón (balanza manual)
func (c *TerminalController) SetQuantity(ctx *gin.Context) {
	productID, err := strconv.ParseInt(ctx.Param("product_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid product_id"})
		return
	}

	var req request.SetQuantityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quantity, err := money.ParseAmount(req.Quantity)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.terminal.SetQuantity(productID, quantity); err != nil {
		ctx.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response.NewTerminalViewResponse(c.terminal, c.session.IsOpen()))
}

// RemoveItem quita un renglón del carrito
func (c *TerminalController) RemoveItem(ctx *gin.Context) {
	productID, err := strconv.ParseInt(ctx.Param("product_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid product_id"})
		return
	}

	if err := c.terminal.RemoveLine(productID); err != nil {
		ctx.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response.NewTerminalViewResponse(c.terminal, c.session.IsOpen()))
}

// Checkout pasa del catálogo a la pantalla de pago
func (c *TerminalController) Checkout(ctx *gin.Context) {
	if err := c.terminal.Checkout(); err != nil {
		ctx.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, response.NewTerminalViewResponse(c.terminal, c.session.IsOpen()))
}

// CancelPayment vuelve al catálogo conservando el carrito
func (c *TerminalController) CancelPayment(ctx *gin.Context) {
	if err := c.terminal.CancelPayment(); err != nil {
		ctx.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, response.NewTerminalViewResponse(c.terminal, c.session.IsOpen()))
}

// Pay ejecuta el commit de la venta en curso. Un commit fallido deja el
// terminal en la pantalla de pago con el error inline; uno exitoso pasa
// a la pantalla de recibo.
func (c *TerminalController) Pay(ctx *gin.Context) {
	if c.registerSaleUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "sales not available (store not configured)",
		})
		return
	}

	var req request.PayRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Dedupe de reenvíos: el mismo intento ya completado devuelve el
	// recibo existente sin registrar la venta de nuevo
	if req.AttemptID != "" {
		if attemptID, err := uuid.Parse(req.AttemptID); err == nil {
			if receipt, ok := c.terminal.ReceiptForAttempt(attemptID); ok {
				ctx.JSON(http.StatusOK, gin.H{"receipt": receipt, "duplicate": true})
				return
			}
		}
	}

	method := entity.PaymentMethod(req.PaymentMethod)
	if !method.IsValid() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": entity.ErrInvalidPaymentMethod.Error()})
		return
	}

	tendered := decimal.Zero
	if req.AmountTendered != "" {
		parsed, err := money.ParseAmount(req.AmountTendered)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		tendered = parsed
	}

	attemptID, err := c.terminal.BeginCommit()
	if err != nil {
		ctx.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	userID := ctx.GetHeader("X-User-ID")
	cart := c.terminal.CartSnapshot()

	receipt, err := c.registerSaleUC.Execute(ctx.Request.Context(), userID, cart, method, tendered, attemptID)
	if err != nil {
		c.terminal.FailCommit(attemptID)
		log.Printf("Error registering sale: %v", err)
		ctx.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	if err := c.terminal.CompleteCommit(attemptID, receipt); err != nil {
		// La venta quedó escrita pero el terminal no pudo transicionar;
		// se devuelve el recibo igual para que el cajero no la pierda
		log.Printf("⚠️  Warning: sale %d committed but terminal transition failed: %v", receipt.SaleHeaderID, err)
	}

	ctx.JSON(http.StatusCreated, gin.H{"receipt": receipt})
}

// Receipt retorna el recibo de la venta recién completada
func (c *TerminalController) Receipt(ctx *gin.Context) {
	receipt, ok := c.terminal.Receipt()
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "no receipt available"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"receipt": receipt})
}

// NewOrder vacía el carrito y vuelve al catálogo para la próxima venta
func (c *TerminalController) NewOrder(ctx *gin.Context) {
	if err := c.terminal.NewOrder(); err != nil {
		ctx.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, response.NewTerminalViewResponse(c.terminal, c.session.IsOpen()))
}

// resolveProduct busca el producto en el store remoto y degrada al snapshot
// local si el store no está disponible
func (c *TerminalController) resolveProduct(ctx context.Context, productID int64) (*catalogEntity.Product, error) {
	if c.productRepo != nil {
		product, err := c.productRepo.GetByID(ctx, productID)
		if err == nil {
			return product, nil
		}
		if err == catalogEntity.ErrProductNotFound {
			return nil, err
		}
		log.Printf("⚠️  Warning: remote product lookup failed, trying local snapshot: %v", err)
	}

	if c.snapshot != nil {
		for _, product := range c.snapshot.LoadOrDefaults() {
			if product.ID == productID {
				return &product, nil
			}
		}
	}

	return nil, catalogEntity.ErrProductNotFound
}
