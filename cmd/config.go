package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"slices"
	"sort"

	"customerorder/internal/core/application/usecases/commands"
	"customerorder/internal/pkg/logging"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	StoreDriverMongo    = "mongo"
	StoreDriverPostgres = "postgres"

	SMSDriverAfricasTalking = "africastalking"
	SMSDriverLog            = "log"

	AfricasTalkingSandbox    = "sandbox"
	AfricasTalkingProduction = "production"
)

type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"8000"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile  string `envconfig:"LOG_FILE"`

	StoreDriver string `envconfig:"STORE_DRIVER" default:"mongo"`

	MongoURL string `envconfig:"MONGODB_URL"`
	MongoDB  string `envconfig:"MONGODB_DB"`

	DBHost     string `envconfig:"DB_HOST"`
	DBPort     string `envconfig:"DB_PORT"`
	DBUser     string `envconfig:"DB_USER"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME"`
	DBSslMode  string `envconfig:"DB_SSLMODE"`

	SMSDriver                 string `envconfig:"SMS_DRIVER" default:"africastalking"`
	AfricasTalkingUsername    string `envconfig:"AFRICASTALKING_USERNAME"`
	AfricasTalkingAPIKey      string `envconfig:"AFRICASTALKING_API_KEY"`
	AfricasTalkingSenderID    string `envconfig:"AFRICASTALKING_SENDER_ID"`
	AfricasTalkingEnvironment string `envconfig:"AFRICASTALKING_ENVIRONMENT" default:"production"`

	OrderCustomerCheck  string   `envconfig:"ORDER_CUSTOMER_CHECK" default:"before_insert"`
	OrphanAuditSchedule string   `envconfig:"ORPHAN_AUDIT_SCHEDULE" default:"@hourly"`
	CORSAllowOrigins    []string `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8000"`
}

// LoadConfig reads envFile into the process environment, when it exists, and decodes the
// environment into a Config. Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := checkEnvFileKeys(envFile); err != nil {
			return Config{}, err
		}
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("decode environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every missing or malformed value at once.
func (c Config) Validate() error {
	var errList []error
	require := func(key, value string) {
		if value == "" {
			errList = append(errList, fmt.Errorf("%s is required", key))
		}
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errList = append(errList, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	switch c.StoreDriver {
	case StoreDriverMongo:
		require("MONGODB_URL", c.MongoURL)
		require("MONGODB_DB", c.MongoDB)
	case StoreDriverPostgres:
		require("DB_HOST", c.DBHost)
		require("DB_PORT", c.DBPort)
		require("DB_USER", c.DBUser)
		require("DB_PASSWORD", c.DBPassword)
		require("DB_NAME", c.DBName)
		require("DB_SSLMODE", c.DBSslMode)
	default:
		errList = append(errList, fmt.Errorf("STORE_DRIVER: unknown driver %q", c.StoreDriver))
	}

	switch c.SMSDriver {
	case SMSDriverAfricasTalking:
		require("AFRICASTALKING_USERNAME", c.AfricasTalkingUsername)
		require("AFRICASTALKING_API_KEY", c.AfricasTalkingAPIKey)
		if c.AfricasTalkingEnvironment != AfricasTalkingSandbox && c.AfricasTalkingEnvironment != AfricasTalkingProduction {
			errList = append(errList, fmt.Errorf("AFRICASTALKING_ENVIRONMENT: unknown environment %q", c.AfricasTalkingEnvironment))
		}
	case SMSDriverLog:
	default:
		errList = append(errList, fmt.Errorf("SMS_DRIVER: unknown driver %q", c.SMSDriver))
	}

	if _, err := commands.ParseCustomerCheck(c.OrderCustomerCheck); err != nil {
		errList = append(errList, fmt.Errorf("ORDER_CUSTOMER_CHECK: %w", err))
	}

	if len(errList) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errList...))
	}
	return nil
}

// CustomerCheck returns the parsed ORDER_CUSTOMER_CHECK policy. Call after Validate.
func (c Config) CustomerCheck() commands.CustomerCheck {
	check, _ := commands.ParseCustomerCheck(c.OrderCustomerCheck)
	return check
}

// checkEnvFileKeys rejects a file that sets keys Config does not read. A missing file is fine.
func checkEnvFileKeys(path string) error {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	known := knownKeys()
	var unknown []string
	for key := range values {
		if !slices.Contains(known, key) {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("%s: unknown keys %v", path, unknown)
	}
	return nil
}

func knownKeys() []string {
	t := reflect.TypeOf(Config{})
	keys := make([]string, 0, t.NumField())
	for i := range t.NumField() {
		if key := t.Field(i).Tag.Get("envconfig"); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}
