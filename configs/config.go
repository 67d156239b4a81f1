package configs

import (
	"errors"
	"os"
	"strings"

	"github.com/kkyr/fig"
	"go.uber.org/zap"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type DB struct {
	Driver             string `default:"postgres"`
	Host               string
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string
	Database           string `default:"postgres"`
	Path               string `default:"drinks.db"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
}

type Server struct {
	Port int `default:"8080"`
}

type Integrations struct {
	Drinks     []string `default:"untappd_web"`
	UntappdURL string   `default:"https://untappd.com"`
}

type Config struct {
	DB           DB
	Server       Server
	Integrations Integrations
	Auth         Auth
}

type Auth struct {
	SecretKey string
	Audience  string
	Domain    string
}

const envPrefix = "DRINKCATALOG" // env prefix for env vars

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	if err = config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// validate checks the settings fig cannot express with tags because they depend on the driver.
func (c *Config) validate() error {
	var missing []string

	switch c.DB.Driver {
	case DriverPostgres:
		if c.DB.Host == "" {
			missing = append(missing, "DB.Host")
		}

		if c.DB.Password == "" {
			missing = append(missing, "DB.Password")
		}
	case DriverSQLite:
		if c.DB.Path == "" {
			missing = append(missing, "DB.Path")
		}
	default:
		return errors.Join(ErrConfiguration, errors.New("DB.Driver: unsupported driver "+c.DB.Driver))
	}

	if len(missing) > 0 {
		return errors.Join(ErrConfiguration, errors.New(strings.Join(missing, ", ")+": required for driver "+c.DB.Driver))
	}

	return nil
}
