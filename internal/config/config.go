package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config хранит конфигурацию сервера
type Config struct {
	ServerAddress    string        `json:"server_address"`
	BaseURL          string        `json:"base_url"`
	DatabaseDSN      string        `json:"database_dsn"`
	PgMigrationsPath string        `json:"pg_migrations_path"`
	AuthBaseURL      string        `json:"auth_base_url"`
	AuthJWTSecret    string        `json:"auth_jwt_secret"`
	AuthTimeout      time.Duration `json:"-"`
	ClickTimeout     time.Duration `json:"-"`
	EnableHTTPS      bool          `json:"enable_https"`
	TLSCertPath      string        `json:"tls_cert_path"`
	TLSKeyPath       string        `json:"tls_key_path"`
	TrustedSubnet    string        `json:"trusted_subnet"`
}

// NewConfig инициализирует конфигурацию: значения по умолчанию,
// затем .env и переменные окружения, затем JSON-файл и флаги.
func NewConfig() *Config {

	viper.SetDefault("SERVER_ADDRESS", "localhost:8080") // Значения по умолчанию
	viper.SetDefault("BASE_URL", "http://localhost:8080")
	viper.SetDefault("DATABASE_DSN", "")
	viper.SetDefault("PG_MIGRATIONS_PATH", "internal/migrations")
	viper.SetDefault("AUTH_BASE_URL", "")
	viper.SetDefault("AUTH_JWT_SECRET", "")
	viper.SetDefault("AUTH_TIMEOUT", "3s")
	viper.SetDefault("CLICK_TIMEOUT", "500ms")
	viper.SetDefault("ENABLE_HTTPS", false)
	viper.SetDefault("TLS_CERT_PATH", "cert.pem")
	viper.SetDefault("TLS_KEY_PATH", "key.pem")
	viper.SetDefault("TRUSTED_SUBNET", "")

	viper.AutomaticEnv()

	// Читаем .env, если есть (не переопределяет переменные окружения!)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // Ошибку игнорируем, если файла нет

	// Определяем флаги, но НЕ задаем в них значения по умолчанию
	serverAddress := flag.String("a", "", "server address")
	baseURL := flag.String("b", "", "base URL")
	databaseDSN := flag.String("d", "", "PostgreSQL DSN")
	authBaseURL := flag.String("auth", "", "identity provider base URL")
	enableHTTPS := flag.Bool("s", false, "enable HTTPS")
	tlsCertPath := flag.String("cert", "", "path to TLS certificate")
	tlsKeyPath := flag.String("key", "", "path to TLS key")
	configPath := flag.String("c", "", "path to JSON config file")
	trustedSubnet := flag.String("t", "", "trusted subnet in CIDR format")
	flag.StringVar(configPath, "config", "", "path to JSON config file")

	flag.Parse()

	// Загружаем JSON-конфигурацию (если указана)
	if *configPath == "" {
		*configPath = os.Getenv("CONFIG")
	}

	type rawJSON Config
	jsonCfg := &rawJSON{}
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			log.Printf("Не удалось прочитать JSON-файл конфигурации %q: %v", *configPath, err)
		} else if err := json.Unmarshal(data, jsonCfg); err != nil {
			log.Printf("Ошибка разбора JSON-файла конфигурации: %v", err)
		}
	}

	cfg := &Config{
		ServerAddress:    viper.GetString("SERVER_ADDRESS"),
		BaseURL:          viper.GetString("BASE_URL"),
		DatabaseDSN:      viper.GetString("DATABASE_DSN"),
		PgMigrationsPath: viper.GetString("PG_MIGRATIONS_PATH"),
		AuthBaseURL:      viper.GetString("AUTH_BASE_URL"),
		AuthJWTSecret:    viper.GetString("AUTH_JWT_SECRET"),
		AuthTimeout:      viper.GetDuration("AUTH_TIMEOUT"),
		ClickTimeout:     viper.GetDuration("CLICK_TIMEOUT"),
		EnableHTTPS:      viper.GetBool("ENABLE_HTTPS"),
		TLSCertPath:      viper.GetString("TLS_CERT_PATH"),
		TLSKeyPath:       viper.GetString("TLS_KEY_PATH"),
		TrustedSubnet:    viper.GetString("TRUSTED_SUBNET"),
	}

	// Значения из JSON применяем только там, где окружение пусто
	applyJSON := func(jsonVal string, target *string) {
		if *target == "" && jsonVal != "" {
			*target = jsonVal
		}
	}
	applyJSON(jsonCfg.DatabaseDSN, &cfg.DatabaseDSN)
	applyJSON(jsonCfg.AuthBaseURL, &cfg.AuthBaseURL)
	applyJSON(jsonCfg.AuthJWTSecret, &cfg.AuthJWTSecret)
	applyJSON(jsonCfg.TrustedSubnet, &cfg.TrustedSubnet)
	applyJSON(jsonCfg.TLSCertPath, &cfg.TLSCertPath)
	applyJSON(jsonCfg.TLSKeyPath, &cfg.TLSKeyPath)

	// Если флаг передан — он имеет высший приоритет
	if *serverAddress != "" {
		cfg.ServerAddress = *serverAddress
	}
	if *baseURL != "" {
		cfg.BaseURL = *baseURL
	}
	if *databaseDSN != "" {
		cfg.DatabaseDSN = *databaseDSN
		os.Setenv("DATABASE_DSN", cfg.DatabaseDSN)
	}
	if *authBaseURL != "" {
		cfg.AuthBaseURL = *authBaseURL
	}
	if *trustedSubnet != "" {
		cfg.TrustedSubnet = *trustedSubnet
	}

	// Включаем TLS
	if *enableHTTPS {
		cfg.EnableHTTPS = true
	}
	if *tlsCertPath != "" {
		cfg.TLSCertPath = *tlsCertPath
	}
	if *tlsKeyPath != "" {
		cfg.TLSKeyPath = *tlsKeyPath
	}

	log.Printf("Инициализация конфигурации: ServerAddress=%s", cfg.ServerAddress)
	log.Printf("Инициализация конфигурации: BaseURL=%s", cfg.BaseURL)
	log.Printf("Инициализация конфигурации: PgMigrationsPath=%s", cfg.PgMigrationsPath)
	log.Printf("Инициализация конфигурации: AuthBaseURL=%s", cfg.AuthBaseURL)
	log.Printf("Инициализация конфигурации: EnableHTTPS=%v", cfg.EnableHTTPS)

	return cfg
}

// Validate проверяет корректность конфигурации.
// Отсутствие DSN базы или параметров провайдера — ошибка запуска,
// сервер с такой конфигурацией подниматься не должен.
func (cfg *Config) Validate() error {
	if cfg.ServerAddress == "" {
		return fmt.Errorf("адрес сервера не может быть пустым")
	}
	if cfg.BaseURL == "" {
		return fmt.Errorf("базовый URL не может быть пустым")
	}
	if cfg.DatabaseDSN == "" {
		return fmt.Errorf("DATABASE_DSN не задан")
	}
	if cfg.AuthBaseURL == "" {
		return fmt.Errorf("AUTH_BASE_URL не задан")
	}
	if cfg.AuthJWTSecret == "" {
		return fmt.Errorf("AUTH_JWT_SECRET не задан")
	}
	if cfg.ClickTimeout <= 0 {
		return fmt.Errorf("CLICK_TIMEOUT должен быть положительным")
	}
	return nil
}
