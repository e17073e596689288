package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env        string           `env-default:"local" yaml:"env"`                             // Env is the current environment: local, dev, prod.
	Postgres   PostgresConfig   `                    yaml:"postgres"    env-required:"true"` // Postgres holds the database configuration
	HTTPServer HTTPServerConfig `                    yaml:"http_server"`                     // HTTPServer holds the API listener configuration
	Monitoring MonitoringConfig `                    yaml:"monitoring"`                      // Monitoring holds the metrics/health listener configuration
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string `yaml:"host"`                        // Host is the database server address.
	Port     string `yaml:"port"     env-default:"5432"` // Port is the database server port.
	User     string `yaml:"user"`                        // User is the database user.
	Password string `yaml:"password"`                    // Password is the database user's password.
	Dbname   string `yaml:"db_name"`                     // Dbname is the name of the database.
}

// HTTPServerConfig struct holds the configuration of the employee API listener.
type HTTPServerConfig struct {
	Address         string        `yaml:"address"          env-default:":8000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env-default:"4s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env-default:"4s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

// MonitoringConfig struct holds the configuration of the /metrics and /healthz listener.
type MonitoringConfig struct {
	Port int `yaml:"port" env-default:"8080"`
}

// MustLoad loads the configuration from the YAML file named by CONFIG_PATH and returns a Config struct.
// Environment variables override file values, e.g. POSTGRES_PASSWORD overrides postgres.password.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		panic("config path is empty")
	}

	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	vpr := viper.New()
	vpr.SetConfigFile(configPath)
	vpr.SetConfigType("yaml")
	vpr.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vpr.AutomaticEnv()

	setDefaults(vpr)

	if err := vpr.ReadInConfig(); err != nil {
		panic("config error: " + err.Error())
	}

	return &Config{
		Env: vpr.GetString("env"),
		Postgres: PostgresConfig{
			Host:     vpr.GetString("postgres.host"),
			Port:     vpr.GetString("postgres.port"),
			User:     vpr.GetString("postgres.user"),
			Password: vpr.GetString("postgres.password"),
			Dbname:   vpr.GetString("postgres.db_name"),
		},
		HTTPServer: HTTPServerConfig{
			Address:         vpr.GetString("http_server.address"),
			ReadTimeout:     vpr.GetDuration("http_server.read_timeout"),
			WriteTimeout:    vpr.GetDuration("http_server.write_timeout"),
			IdleTimeout:     vpr.GetDuration("http_server.idle_timeout"),
			ShutdownTimeout: vpr.GetDuration("http_server.shutdown_timeout"),
		},
		Monitoring: MonitoringConfig{
			Port: vpr.GetInt("monitoring.port"),
		},
	}
}

func setDefaults(vpr *viper.Viper) {
	var (
		defReadTimeout     = 4 * time.Second
		defWriteTimeout    = 4 * time.Second
		defIdleTimeout     = 60 * time.Second
		defShutdownTimeout = 10 * time.Second
		defMonitoringPort  = 8080
	)

	vpr.SetDefault("env", "local")
	vpr.SetDefault("postgres.port", "5432")
	vpr.SetDefault("http_server.address", ":8000")
	vpr.SetDefault("http_server.read_timeout", defReadTimeout)
	vpr.SetDefault("http_server.write_timeout", defWriteTimeout)
	vpr.SetDefault("http_server.idle_timeout", defIdleTimeout)
	vpr.SetDefault("http_server.shutdown_timeout", defShutdownTimeout)
	vpr.SetDefault("monitoring.port", defMonitoringPort)
}
