package configs

import (
	"fmt"
	"strings"

	"perf-analytics/internal/shared/validators"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. PERFSTATS_MONGO_URI.
const EnvPrefix = "PERFSTATS"

// LoadConfig reads configuration from file, overlays environment variables and validates it.
var LoadConfig = func(configPath string) (*Config, error) {
	// .env is optional; real environment variables win over it
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		// Read from file
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if len(cfg.Aggregation.AuditMetrics) == 0 {
		cfg.Aggregation.AuditMetrics = DefaultAuditMetrics()
	}

	// Validate config
	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

// DefaultAuditMetrics is the lighthouse watch list used when the config does not name one.
func DefaultAuditMetrics() []AuditMetricConfig {
	return []AuditMetricConfig{
		{Name: "first-contentful-paint", Gap: 100},
		{Name: "first-meaningful-paint", Gap: 100},
		{Name: "speed-index", Gap: 100},
		{Name: "estimated-input-latency", Gap: 5},
		{Name: "interactive", Gap: 100},
		{Name: "first-cpu-idle", Gap: 100},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("mongo.uri", "mongodb://127.0.0.1:27017")
	v.SetDefault("mongo.database", "v")
	v.SetDefault("mongo.collection_prefix", "xes_fed_bi_")
	v.SetDefault("mongo.connect_timeout", 10)
	v.SetDefault("progress.every", 1000)
	v.SetDefault("aggregation.missing_metric_policy", "skip")
	v.SetDefault("aggregation.default_gap", 400)
	v.SetDefault("tasks.skip_finished", false)
	v.SetDefault("report.format", "table")
	v.SetDefault("file_storage.root_dir", "")
	v.SetDefault("metrics.pushgateway_url", "")
	v.SetDefault("server.port", 0)
	v.SetDefault("server.read_header_timeout", 5)
	v.SetDefault("server.shutdown_timeout", 5)
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// Build field path (e.g., "Config.mongo.uri" -> "mongo.uri")
	if e.Namespace() != "" {
		parts := strings.Split(e.Namespace(), ".")
		if len(parts) >= 2 {
			// Skip "Config" prefix
			field = strings.Join(parts[1:], ".")
		}
	}

	var msg string
	switch tag {
	case "required":
		msg = fmt.Sprintf("%s (required)", field)
	case "min":
		msg = fmt.Sprintf("%s (min=%s)", field, e.Param())
	case "max":
		msg = fmt.Sprintf("%s (max=%s)", field, e.Param())
	case "oneof":
		msg = fmt.Sprintf("%s (oneof=%s)", field, e.Param())
	default:
		msg = fmt.Sprintf("%s (%s)", field, tag)
	}

	return msg
}
