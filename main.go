package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	catalogUseCase "github.com/Jean-snt/SUPABASE-MOD-1-3/src/catalog/application/usecase"
	catalogPort "github.com/Jean-snt/SUPABASE-MOD-1-3/src/catalog/domain/port"
	catalogCache "github.com/Jean-snt/SUPABASE-MOD-1-3/src/catalog/infrastructure/cache"
	catalogClient "github.com/Jean-snt/SUPABASE-MOD-1-3/src/catalog/infrastructure/client"
	catalogController "github.com/Jean-snt/SUPABASE-MOD-1-3/src/catalog/infrastructure/controller"
	catalogPersistence "github.com/Jean-snt/SUPABASE-MOD-1-3/src/catalog/infrastructure/persistence"
	registerUseCase "github.com/Jean-snt/SUPABASE-MOD-1-3/src/register/application/usecase"
	registerEntity "github.com/Jean-snt/SUPABASE-MOD-1-3/src/register/domain/entity"
	registerPort "github.com/Jean-snt/SUPABASE-MOD-1-3/src/register/domain/port"
	registerClient "github.com/Jean-snt/SUPABASE-MOD-1-3/src/register/infrastructure/client"
	registerController "github.com/Jean-snt/SUPABASE-MOD-1-3/src/register/infrastructure/controller"
	registerPersistence "github.com/Jean-snt/SUPABASE-MOD-1-3/src/register/infrastructure/persistence"
	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/shared/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	migratePostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq" // Driver de PostgreSQL
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	log.Println("🚀 POS Service - Iniciando...")

	cfg := config.Load()

	// Configurar el router con Gin
	router := gin.New()

	// Agregar middlewares básicos necesarios
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Configurar Prometheus metrics si está habilitado
	if cfg.PrometheusEnabled {
		log.Println("Registering /metrics endpoint for POS service")
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	} else {
		log.Println("Prometheus metrics disabled for POS service")
	}

	// Persistencia: store REST remoto (estilo PostgREST) o PostgreSQL directo.
	// Sin ninguno de los dos el servicio arranca igual, degradado a catálogo
	// local y health check.
	var db *sql.DB
	if cfg.UseRemoteStore() {
		log.Printf("✅ Usando store remoto: %s", cfg.StoreAPIURL)
	} else {
		log.Printf("Intentando conectar a %s: %s", cfg.DBName, cfg.ConnString())
		var err error
		db, err = sql.Open("postgres", cfg.ConnString())
		if err != nil {
			log.Printf("⚠️  Advertencia: Error al conectar a la base de datos: %v", err)
			log.Println("⚠️  Continuando sin DB (catálogo local y health check)")
			db = nil
		} else {
			defer db.Close()
			if err = db.Ping(); err != nil {
				log.Printf("⚠️  Advertencia: Error al verificar la conexión a la base de datos: %v", err)
				log.Println("⚠️  Continuando sin DB (catálogo local y health check)")
				db = nil
			} else {
				log.Printf("✅ Conexión a %s establecida con éxito", cfg.DBName)
				if err = runMigrations(db, cfg.MigrationsDir); err != nil {
					log.Printf("⚠️  Advertencia: Error al correr migraciones: %v", err)
				}
			}
		}
	}

	// Cache local del catálogo: snapshot en disco para seguir vendiendo
	// con el catálogo conocido cuando el store no responde
	snapshot := catalogCache.NewCatalogSnapshot(cfg.CatalogSnapshotPath, cfg.CatalogSnapshotTTL)

	// Estado de la caja: una sesión y un terminal por instancia (un cajero)
	session := registerEntity.NewCashSession()
	terminal := registerEntity.NewTerminal(session)

	// API v1 grupo de rutas
	v1 := router.Group("/api/v1")

	// Health check
	healthHandler := func(ctx *gin.Context) {
		status := gin.H{
			"status":  "ok",
			"service": "pos-service",
			"store":   "none",
		}
		if cfg.UseRemoteStore() {
			status["store"] = "rest"
		} else if db != nil {
			status["store"] = "postgres"
		}
		ctx.JSON(200, status)
	}
	router.GET("/health", healthHandler)
	v1.GET("/health", healthHandler)

	productRepo, stockRepo := setupCatalogModule(v1, cfg, db, snapshot)
	setupRegisterModule(v1, cfg, db, session, terminal, productRepo, stockRepo, snapshot)

	// Iniciar el servidor
	log.Printf("✅ Servidor POS Service iniciado en http://localhost:%s", cfg.Port)
	log.Printf("✅ Health endpoint: GET http://localhost:%s/health", cfg.Port)
	router.Run(":" + cfg.Port)
}

// runMigrations aplica las migraciones pendientes sobre la conexión abierta
func runMigrations(db *sql.DB, dir string) error {
	driver, err := migratePostgres.WithInstance(db, &migratePostgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", dir), "postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	log.Println("✅ Migraciones aplicadas")
	return nil
}

// setupCatalogModule configura el módulo Catalog y retorna los puertos de
// producto y stock para que el módulo Register los reutilice
func setupCatalogModule(
	router *gin.RouterGroup,
	cfg config.AppConfig,
	db *sql.DB,
	snapshot *catalogCache.CatalogSnapshot,
) (catalogPort.ProductRepository, catalogPort.StockRepository) {
	log.Println("Configurando módulo Catalog...")

	var productRepo catalogPort.ProductRepository
	var stockRepo catalogPort.StockRepository
	if cfg.UseRemoteStore() {
		storeClient := catalogClient.NewCatalogStoreClient()
		productRepo = storeClient
		stockRepo = storeClient
	} else if db != nil {
		pgRepo := catalogPersistence.NewProductPostgresRepository(db)
		productRepo = pgRepo
		stockRepo = pgRepo
	} else {
		log.Println("⚠️  Catálogo en modo local: solo snapshot y productos de fábrica")
	}

	listProductsUC := catalogUseCase.NewListProductsUseCase(productRepo, snapshot)
	searchProductsUC := catalogUseCase.NewSearchProductsUseCase(productRepo, snapshot)
	listCategoriesUC := catalogUseCase.NewListCategoriesUseCase(productRepo)

	catalogCtrl := catalogController.NewCatalogController(listProductsUC, searchProductsUC, listCategoriesUC)
	catalogCtrl.RegisterRoutes(router)

	log.Println("Módulo Catalog configurado exitosamente")
	return productRepo, stockRepo
}

// setupRegisterModule configura el módulo Register: apertura de caja,
// terminal de venta y reportes
func setupRegisterModule(
	router *gin.RouterGroup,
	cfg config.AppConfig,
	db *sql.DB,
	session *registerEntity.CashSession,
	terminal *registerEntity.Terminal,
	productRepo catalogPort.ProductRepository,
	stockRepo catalogPort.StockRepository,
	snapshot *catalogCache.CatalogSnapshot,
) {
	log.Println("Configurando módulo Register...")

	var salesRepo registerPort.SalesRepository
	var movementRepo registerPort.CashMovementRepository
	if cfg.UseRemoteStore() {
		salesRepo = registerClient.NewSalesStoreClient()
		movementRepo = registerClient.NewCashMovementStoreClient()
	} else if db != nil {
		salesRepo = registerPersistence.NewSalesPostgresRepository(db)
		movementRepo = registerPersistence.NewCashMovementPostgresRepository(db)
	} else {
		log.Println("⚠️  Caja sin store: apertura y ventas deshabilitadas (503)")
	}

	var openRegisterUC *registerUseCase.OpenRegisterUseCase
	var listMovementsUC *registerUseCase.ListMovementsUseCase
	if movementRepo != nil {
		openRegisterUC = registerUseCase.NewOpenRegisterUseCase(movementRepo, session, cfg.RegisterReuseOpening)
		listMovementsUC = registerUseCase.NewListMovementsUseCase(movementRepo)
	}

	var registerSaleUC *registerUseCase.RegisterSaleUseCase
	var listSalesUC *registerUseCase.ListSalesUseCase
	if salesRepo != nil {
		registerSaleUC = registerUseCase.NewRegisterSaleUseCase(salesRepo, stockRepo, cfg.StockPolicy)
		listSalesUC = registerUseCase.NewListSalesUseCase(salesRepo)
	}

	registerCtrl := registerController.NewRegisterController(session, openRegisterUC, listMovementsUC)
	terminalCtrl := registerController.NewTerminalController(terminal, session, registerSaleUC, productRepo, snapshot)
	reportCtrl := registerController.NewReportController(listSalesUC)

	registerCtrl.RegisterRoutes(router)
	terminalCtrl.RegisterRoutes(router)
	reportCtrl.RegisterRoutes(router)

	log.Println("Módulo Register configurado exitosamente")
}
