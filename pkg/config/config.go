package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Drivers de almacenamiento.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App        AppConfig
	Log        LogConfig
	HTTP       HTTPConfig
	Store      StoreConfig
	DB         DBConfig
	JWT        JWTConfig
	Operations OperationsConfig
	Drafts     DraftsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel de log.
type LogConfig struct {
	Level string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StoreConfig selecciona la implementación de los colaboradores y la carga inicial del catálogo.
type StoreConfig struct {
	Driver         string            // memory | postgres
	CatalogCSV     string            // ruta opcional del catálogo de productos (solo memory)
	CatalogCharset string            // codificación del CSV; vacío = UTF-8
	Warehouses     []WarehouseConfig // bodegas iniciales (solo memory)
}

// WarehouseConfig bodega declarada en WAREHOUSES como "id=Nombre".
type WarehouseConfig struct {
	ID   string
	Name string
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN arma el connection string con la contraseña escapada.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// TTL duración de los tokens emitidos.
func (c JWTConfig) TTL() time.Duration {
	return time.Duration(c.Expiration) * time.Minute
}

// OperationsConfig parámetros del registro de operaciones.
type OperationsConfig struct {
	FallbackWarehouse string   // bodega usada si el operador no elige ninguna
	DateLayout        string   // formato Go de la fecha del comprobante
	PackagingDefaults []string // etiquetas de empaque iniciales
}

// DraftsConfig expiración de borradores inactivos.
type DraftsConfig struct {
	TTLMinutes int
	SweepSpec  string // expresión cron
}

// TTL tiempo de inactividad tras el cual un borrador se descarta.
func (c DraftsConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde .env / config.env).
// Las env vars tienen prioridad.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // opcional

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig() // opcional

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "inventory-ops"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Store: StoreConfig{
			Driver:         strings.ToLower(getString(v, "STORE_DRIVER", StoreMemory)),
			CatalogCSV:     getString(v, "CATALOG_CSV", ""),
			CatalogCharset: getString(v, "CATALOG_CHARSET", ""),
			Warehouses:     parseWarehouses(getString(v, "WAREHOUSES", "anbar-1=Anbar 1,anbar-2=Anbar 2")),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "inventory_ops"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "inventory-ops"),
		},
		Operations: OperationsConfig{
			FallbackWarehouse: getString(v, "OPERATIONS_FALLBACK_WAREHOUSE", "Anbar 1"),
			DateLayout:        getString(v, "OPERATIONS_DATE_LAYOUT", "02.01.2006"),
			PackagingDefaults: splitList(getString(v, "PACKAGING_DEFAULTS", "50+kənar,25(qutu),10(paket),1")),
		},
		Drafts: DraftsConfig{
			TTLMinutes: getInt(v, "DRAFT_TTL_MINUTES", 240),
			SweepSpec:  getString(v, "DRAFT_SWEEP_SPEC", "@every 5m"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate revisa los valores que impedirían arrancar.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreMemory, StorePostgres:
	default:
		return fmt.Errorf("config: STORE_DRIVER %q no soportado (memory|postgres)", c.Store.Driver)
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("config: HTTP_PORT %d fuera de rango", c.HTTP.Port)
	}
	if c.JWT.Expiration <= 0 {
		return fmt.Errorf("config: JWT_EXPIRATION_MINUTES debe ser positivo")
	}
	if c.Drafts.TTLMinutes <= 0 {
		return fmt.Errorf("config: DRAFT_TTL_MINUTES debe ser positivo")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	if s, ok := v.Get(key).(string); ok {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return def
		}
		return n
	}
	return v.GetInt(key)
}

// parseWarehouses interpreta "id=Nombre,id2=Nombre 2". Sin "=" el valor es a la vez ID y nombre.
func parseWarehouses(s string) []WarehouseConfig {
	var out []WarehouseConfig
	for _, item := range splitList(s) {
		id, name, ok := strings.Cut(item, "=")
		id, name = strings.TrimSpace(id), strings.TrimSpace(name)
		if !ok || name == "" {
			name = id
		}
		out = append(out, WarehouseConfig{ID: id, Name: name})
	}
	return out
}

// splitList separa por comas y descarta elementos vacíos.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
