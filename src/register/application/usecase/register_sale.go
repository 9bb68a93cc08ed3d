package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	catalogPort "github.com/Jean-snt/SUPABASE-MOD-1-3/src/catalog/domain/port"
	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/register/domain/entity"
	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/register/domain/port"
	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/shared/infrastructure/config"
	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/shared/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegisterSaleUseCase ejecuta el commit de una venta: tres escrituras
// remotas en orden estricto, sin transacción que las cubra.
//  1. Insertar cabecera (falla ⇒ aborta todo, no corre nada más)
//  2. Insertar detalles (falla ⇒ se reporta error, la cabecera NO se
//     revierte y queda huérfana en el store)
//  3. Decrementar stock por producto (falla ⇒ se loguea y se saltea;
//     la venta igual se considera exitosa)
type RegisterSaleUseCase struct {
	salesRepo   port.SalesRepository
	stockRepo   catalogPort.StockRepository
	stockPolicy config.StockPolicy
}

// NewRegisterSaleUseCase crea una nueva instancia del caso de uso
func NewRegisterSaleUseCase(
	salesRepo port.SalesRepository,
	stockRepo catalogPort.StockRepository,
	stockPolicy config.StockPolicy,
) *RegisterSaleUseCase {
	return &RegisterSaleUseCase{
		salesRepo:   salesRepo,
		stockRepo:   stockRepo,
		stockPolicy: stockPolicy,
	}
}

// Execute registra la venta y retorna el recibo armado con el carrito y el
// pago exactamente como estaban al momento del commit.
func (uc *RegisterSaleUseCase) Execute(
	ctx context.Context,
	userIDRaw string,
	cart *entity.Cart,
	method entity.PaymentMethod,
	tendered decimal.Decimal,
	attemptID uuid.UUID,
) (*entity.Receipt, error) {
	// ========================================================================
	// PASO 0: VALIDACIONES LOCALES (nunca llegan al store)
	// ========================================================================
	userID, err := uuid.Parse(userIDRaw)
	if err != nil {
		return nil, entity.ErrInvalidUser
	}

	header, details, err := entity.BuildSale(userID, cart, method)
	if err != nil {
		return nil, err
	}

	// Solo el efectivo valida monto entregado; las billeteras y la tarjeta
	// cobran exacto y no se validan acá
	if method.IsCash() && tendered.LessThan(header.Total) {
		return nil, entity.ErrInsufficientTender
	}

	// Política estricta de stock: validar disponibilidad antes de escribir.
	// Con la política por defecto ("allow") el stock puede quedar negativo.
	if uc.stockPolicy == config.StockPolicyReject {
		if err := uc.checkAvailability(ctx, details); err != nil {
			return nil, err
		}
	}

	log.Printf("🛒 Registering sale: user=%s items=%d total=%s method=%s attempt=%s",
		userID, len(details), money.Format(header.Total), method, attemptID)

	// ========================================================================
	// PASO 1: INSERTAR CABECERA DE VENTA
	// ========================================================================
	headerID, err := uc.salesRepo.InsertHeader(ctx, header)
	if err != nil {
		log.Printf("❌ Error inserting sale header: %v", err)
		return nil, fmt.Errorf("error inserting sale header: %w", err)
	}
	header.ID = headerID

	// ========================================================================
	// PASO 2: INSERTAR DETALLES DE VENTA
	// Si falla, la cabecera ya insertada NO se revierte: queda una venta
	// sin renglones en el store. Limitación conocida, no se oculta.
	// ========================================================================
	for i := range details {
		details[i].SaleHeaderID = headerID
	}

	if err := uc.salesRepo.InsertDetails(ctx, details); err != nil {
		log.Printf("❌ Error inserting sale details (header %d remains orphaned): %v", headerID, err)
		return nil, fmt.Errorf("error inserting sale details: %w", err)
	}

	// ========================================================================
	// PASO 3: DECREMENTAR STOCK POR PRODUCTO
	// Cada falla se loguea y se saltea; no es fatal para la venta.
	// ========================================================================
	uc.decrementStock(ctx, details)

	log.Printf("✅ Sale registered: header=%d total=%s", headerID, money.Format(header.Total))

	return buildReceipt(header, cart, tendered, attemptID), nil
}

// checkAvailability valida que haya stock para cada renglón (solo política
// "reject"). Los productos sin control de stock (NULL) no se validan.
func (uc *RegisterSaleUseCase) checkAvailability(ctx context.Context, details []entity.SalesDetail) error {
	if uc.stockRepo == nil {
		return nil
	}
	for _, detail := range details {
		stock, err := uc.stockRepo.GetStock(ctx, detail.ProductID)
		if err != nil {
			return fmt.Errorf("error checking stock for product %d: %w", detail.ProductID, err)
		}
		if stock == nil {
			continue
		}
		if stock.LessThan(detail.Quantity) {
			return fmt.Errorf("%w: product %d has %s, sale needs %s",
				entity.ErrInsufficientStock, detail.ProductID, stock.String(), detail.Quantity.String())
		}
	}
	return nil
}

// decrementStock lee y reescribe el stock de cada producto vendido, en dos
// llamadas separadas por producto. Sin piso: el stock puede quedar negativo.
func (uc *RegisterSaleUseCase) decrementStock(ctx context.Context, details []entity.SalesDetail) {
	if uc.stockRepo == nil {
		return
	}

	for _, detail := range details {
		stock, err := uc.stockRepo.GetStock(ctx, detail.ProductID)
		if err != nil {
			log.Printf("⚠️  Warning: could not read stock for product %d, skipping: %v", detail.ProductID, err)
			continue
		}
		if stock == nil {
			// Producto sin control de stock
			continue
		}

		newStock := stock.Sub(detail.Quantity)
		if err := uc.stockRepo.UpdateStock(ctx, detail.ProductID, newStock); err != nil {
			log.Printf("⚠️  Warning: could not update stock for product %d: %v", detail.ProductID, err)
		}
	}
}

// buildReceipt arma el recibo con el snapshot del carrito y del pago
func buildReceipt(header *entity.SalesHeader, cart *entity.Cart, tendered decimal.Decimal, attemptID uuid.UUID) *entity.Receipt {
	change, remaining := entity.ComputeChange(header.Total, tendered)

	lines := cart.Lines()
	receiptLines := make([]entity.ReceiptLine, 0, len(lines))
	for _, line := range lines {
		receiptLines = append(receiptLines, entity.ReceiptLine{
			ProductID:   line.Product.ID,
			ProductName: line.Product.Name,
			Unit:        line.Product.Unit,
			Quantity:    line.Quantity.String(),
			UnitPrice:   money.Format(line.Product.Price),
			Subtotal:    money.Format(line.Subtotal()),
		})
	}

	return &entity.Receipt{
		SaleHeaderID:  header.ID,
		AttemptID:     attemptID,
		Lines:         receiptLines,
		Total:         money.Format(header.Total),
		PaymentMethod: header.PaymentMethod,
		AmountPaid:    money.Format(tendered),
		Change:        money.Format(change),
		Remaining:     money.Format(remaining),
		CreatedAt:     time.Now(),
	}
}
