package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	JWT          JWTConfig          `yaml:"jwt"`
	Security     SecurityConfig     `yaml:"security"`
	CORS         CORSConfig         `yaml:"cors"`
	DefaultAdmin DefaultAdminConfig `yaml:"default_admin"`
	Contact      ContactConfig      `yaml:"contact"`
	Seed         SeedConfig         `yaml:"seed"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	Mode string `yaml:"mode"`
}

type DatabaseConfig struct {
	Type   string       `yaml:"type"`
	SQLite SQLiteConfig `yaml:"sqlite"`
	MySQL  MySQLConfig  `yaml:"mysql"`
}

type SQLiteConfig struct {
	Path string `yaml:"path"`
}

type MySQLConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	Charset  string `yaml:"charset"`
}

type JWTConfig struct {
	Secret           string `yaml:"secret"`
	Issuer           string `yaml:"issuer"`
	AccessExpiresIn  string `yaml:"access_expires_in"`
	RefreshExpiresIn string `yaml:"refresh_expires_in"`
}

// AccessTTL returns the access token lifetime, defaulting to one hour.
func (c JWTConfig) AccessTTL() time.Duration {
	if d, err := time.ParseDuration(c.AccessExpiresIn); err == nil && d > 0 {
		return d
	}
	return time.Hour
}

// RefreshTTL returns the refresh token lifetime, defaulting to 30 days.
func (c JWTConfig) RefreshTTL() time.Duration {
	if d, err := time.ParseDuration(c.RefreshExpiresIn); err == nil && d > 0 {
		return d
	}
	return 30 * 24 * time.Hour
}

type SecurityConfig struct {
	BcryptCost int `yaml:"bcrypt_cost"`
}

type CORSConfig struct {
	Origins []string `yaml:"origins"`
}

type DefaultAdminConfig struct {
	Username  string `yaml:"username"`
	Email     string `yaml:"email"`
	Password  string `yaml:"password"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
}

// ContactConfig is the public contact card served by the API.
type ContactConfig struct {
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
	Location string `yaml:"location"`
	Github   string `yaml:"github"`
	Linkedin string `yaml:"linkedin"`
}

type SeedConfig struct {
	SampleData bool `yaml:"sample_data"`
}

// Load reads the configuration file and environment variables
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override with environment variables
	if jwtSecret := os.Getenv("PORTFOLIO_JWT_SECRET"); jwtSecret != "" {
		cfg.JWT.Secret = jwtSecret
	}

	if mode := os.Getenv("PORTFOLIO_MODE"); mode != "" {
		cfg.Server.Mode = mode
	}

	if dbType := os.Getenv("PORTFOLIO_DB_TYPE"); dbType != "" {
		cfg.Database.Type = dbType
	}

	if dbPath := os.Getenv("PORTFOLIO_DB_PATH"); dbPath != "" {
		cfg.Database.SQLite.Path = dbPath
	}

	if mysqlHost := os.Getenv("PORTFOLIO_MYSQL_HOST"); mysqlHost != "" {
		cfg.Database.MySQL.Host = mysqlHost
	}

	if mysqlUser := os.Getenv("PORTFOLIO_MYSQL_USER"); mysqlUser != "" {
		cfg.Database.MySQL.Username = mysqlUser
	}

	if mysqlPass := os.Getenv("PORTFOLIO_MYSQL_PASSWORD"); mysqlPass != "" {
		cfg.Database.MySQL.Password = mysqlPass
	}

	if mysqlDB := os.Getenv("PORTFOLIO_MYSQL_DATABASE"); mysqlDB != "" {
		cfg.Database.MySQL.Database = mysqlDB
	}

	if adminPass := os.Getenv("PORTFOLIO_ADMIN_PASSWORD"); adminPass != "" {
		cfg.DefaultAdmin.Password = adminPass
	}

	// Ensure data directory exists for SQLite
	if cfg.Database.Type == "sqlite" {
		dataDir := filepath.Dir(cfg.Database.SQLite.Path)
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	// Validate MySQL configuration if MySQL is selected
	if cfg.Database.Type == "mysql" {
		if cfg.Database.MySQL.Username == "" {
			return nil, fmt.Errorf("MySQL username is required")
		}
		if cfg.Database.MySQL.Database == "" {
			return nil, fmt.Errorf("MySQL database name is required")
		}
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT secret is required")
	}

	// Bootstrap admin defaults
	if cfg.DefaultAdmin.Username == "" {
		cfg.DefaultAdmin.Username = "wheeler"
	}
	if cfg.DefaultAdmin.Email == "" {
		cfg.DefaultAdmin.Email = "admin@portfolio.local"
	}
	if cfg.DefaultAdmin.Password == "" {
		cfg.DefaultAdmin.Password = "admin123"
	}

	return &cfg, nil
}

// IsRelease reports whether the server runs in release (production) mode.
func (c *Config) IsRelease() bool {
	return c.Server.Mode == "release"
}
