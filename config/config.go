package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Storage  StorageConfig
	DB       DBConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Snapshot SnapshotConfig
	Session  SessionConfig
	Views    ViewsConfig
	Billing  BillingConfig
	Admin    AdminConfig
}

type AppConfig struct {
	Port     string
	Env      string
	LogLevel string
	Location *time.Location
}

// StorageConfig selects the record store backing every collection.
type StorageConfig struct {
	Driver string
}

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMongo    = "mongo"
)

type DBConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	AutoMigrate bool
}

type MongoConfig struct {
	URI      string
	Database string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

type SnapshotConfig struct {
	ResyncSpec string
}

type SessionConfig struct {
	TTL time.Duration
}

// ViewsConfig holds per-view overrides of the page reset policy, keyed by view name.
type ViewsConfig struct {
	ResetPageOnFilter map[string]bool
}

type BillingConfig struct {
	Client   PartyConfig
	Provider PartyConfig
}

type PartyConfig struct {
	Name    string
	Address string
	Phone   string
	Email   string
	NIF     string
}

type AdminConfig struct {
	Email    string
	Password string
	Nom      string
	Prenom   string
}

var viewNames = []string{"employees", "doctors", "consultations", "users"}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("APP_TIMEZONE", "UTC")
	viper.SetDefault("STORAGE_DRIVER", StorageDriverPostgres)
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "clinic")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("SNAPSHOT_RESYNC_SPEC", "@every 5m")
	viper.SetDefault("SESSION_TTL", "24h")
}

func LoadConfig() (*Config, error) {
	// .env is optional; real environment variables win over it.
	_ = godotenv.Load()

	viper.AutomaticEnv()
	setDefaults()

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	sessionTTL, err := time.ParseDuration(viper.GetString("SESSION_TTL"))
	if err != nil {
		sessionTTL = 24 * time.Hour
	}

	location, err := time.LoadLocation(viper.GetString("APP_TIMEZONE"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}

	driver := strings.ToLower(viper.GetString("STORAGE_DRIVER"))
	if driver != StorageDriverPostgres && driver != StorageDriverMongo {
		return nil, fmt.Errorf("unsupported STORAGE_DRIVER %q", driver)
	}

	resetOverrides := make(map[string]bool)
	for _, name := range viewNames {
		key := fmt.Sprintf("VIEW_%s_RESET_PAGE", strings.ToUpper(name))
		if viper.IsSet(key) {
			resetOverrides[name] = viper.GetBool(key)
		}
	}

	config := &Config{
		App: AppConfig{
			Port:     viper.GetString("APP_PORT"),
			Env:      viper.GetString("APP_ENV"),
			LogLevel: viper.GetString("LOG_LEVEL"),
			Location: location,
		},
		Storage: StorageConfig{
			Driver: driver,
		},
		DB: DBConfig{
			Host:        viper.GetString("DB_HOST"),
			Port:        viper.GetString("DB_PORT"),
			User:        viper.GetString("DB_USER"),
			Password:    viper.GetString("DB_PASSWORD"),
			Name:        viper.GetString("DB_NAME"),
			SSLMode:     viper.GetString("DB_SSLMODE"),
			AutoMigrate: viper.GetBool("DB_AUTO_MIGRATE"),
		},
		Mongo: MongoConfig{
			URI:      viper.GetString("MONGO_URI"),
			Database: viper.GetString("MONGO_DATABASE"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Snapshot: SnapshotConfig{
			ResyncSpec: viper.GetString("SNAPSHOT_RESYNC_SPEC"),
		},
		Session: SessionConfig{
			TTL: sessionTTL,
		},
		Views: ViewsConfig{
			ResetPageOnFilter: resetOverrides,
		},
		Billing: BillingConfig{
			Client: PartyConfig{
				Name:    viper.GetString("BILLING_CLIENT_NAME"),
				Address: viper.GetString("BILLING_CLIENT_ADDRESS"),
			},
			Provider: PartyConfig{
				Name:    viper.GetString("BILLING_PROVIDER_NAME"),
				Address: viper.GetString("BILLING_PROVIDER_ADDRESS"),
				Phone:   viper.GetString("BILLING_PROVIDER_PHONE"),
				Email:   viper.GetString("BILLING_PROVIDER_EMAIL"),
				NIF:     viper.GetString("BILLING_PROVIDER_NIF"),
			},
		},
		Admin: AdminConfig{
			Email:    viper.GetString("ADMIN_EMAIL"),
			Password: viper.GetString("ADMIN_PASSWORD"),
			Nom:      viper.GetString("ADMIN_NOM"),
			Prenom:   viper.GetString("ADMIN_PRENOM"),
		},
	}

	return config, nil
}
