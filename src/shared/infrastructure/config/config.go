package config

import (
	"os"
	"strconv"
	"time"
)

// StockPolicy define qué hacer cuando una venta dejaría stock negativo.
// "allow" replica el comportamiento histórico del registro (se permite
// sobrevender); "reject" valida disponibilidad antes de escribir la venta.
type StockPolicy string

const (
	StockPolicyAllow  StockPolicy = "allow"
	StockPolicyReject StockPolicy = "reject"
)

// AppConfig agrupa la configuración del servicio leída de variables de entorno
type AppConfig struct {
	Port string

	// Base de datos (modo postgres)
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	MigrationsDir string

	// Store remoto (modo REST, estilo PostgREST)
	StoreAPIURL string
	StoreAPIKey string

	// Cache local del catálogo (análogo al localStorage del front)
	CatalogSnapshotPath string
	CatalogSnapshotTTL  time.Duration

	// Políticas de caja y venta
	StockPolicy          StockPolicy
	RegisterReuseOpening bool

	PrometheusEnabled bool
}

// Load construye la configuración desde el entorno con defaults de desarrollo
func Load() AppConfig {
	return AppConfig{
		Port: GetEnv("PORT", "8080"),

		DBHost:        GetEnv("DB_HOST", "localhost"),
		DBPort:        GetEnv("DB_PORT", "5432"),
		DBUser:        GetEnv("DB_USER", "postgres"),
		DBPassword:    GetEnv("DB_PASSWORD", "postgres"),
		DBName:        GetEnv("DB_NAME", "pos_db"),
		MigrationsDir: GetEnv("MIGRATIONS_DIR", "migrations"),

		StoreAPIURL: os.Getenv("STORE_API_URL"),
		StoreAPIKey: os.Getenv("STORE_API_KEY"),

		CatalogSnapshotPath: GetEnv("CATALOG_SNAPSHOT_PATH", "pos_products_v1.json"),
		CatalogSnapshotTTL:  GetEnvDuration("CATALOG_SNAPSHOT_TTL", 24*time.Hour),

		StockPolicy:          StockPolicy(GetEnv("STOCK_POLICY", string(StockPolicyAllow))),
		RegisterReuseOpening: GetEnvBool("REGISTER_REUSE_OPENING", false),

		PrometheusEnabled: GetEnvBool("PROMETHEUS_ENABLED", false),
	}
}

// ConnString arma el string de conexión de PostgreSQL
func (c AppConfig) ConnString() string {
	return "postgres://" + c.DBUser + ":" + c.DBPassword + "@" + c.DBHost + ":" + c.DBPort + "/" + c.DBName + "?sslmode=disable"
}

// UseRemoteStore indica si la persistencia va contra el store REST remoto
// en lugar de PostgreSQL directo
func (c AppConfig) UseRemoteStore() bool {
	return c.StoreAPIURL != ""
}

// GetEnv obtiene una variable de entorno o devuelve un valor por defecto
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnvBool interpreta una variable de entorno como booleano
func GetEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// GetEnvDuration interpreta una variable de entorno como duración ("24h", "30m")
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
