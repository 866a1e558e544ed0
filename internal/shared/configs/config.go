package configs

// Config holds all configuration for the application.
type Config struct {
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	Mongo       MongoConfig       `mapstructure:"mongo" validate:"required"`
	Progress    ProgressConfig    `mapstructure:"progress"`
	Aggregation AggregationConfig `mapstructure:"aggregation" validate:"required"`
	Tasks       TasksConfig       `mapstructure:"tasks"`
	Report      ReportConfig      `mapstructure:"report" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage"`
	Metrics     MetricsConfig     `mapstructure:"metrics"`
	Server      ServerConfig      `mapstructure:"server"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// MongoConfig holds the source database connection.
type MongoConfig struct {
	URI              string `mapstructure:"uri" validate:"required"`
	Database         string `mapstructure:"database" validate:"required"`
	CollectionPrefix string `mapstructure:"collection_prefix"`
	ConnectTimeout   int    `mapstructure:"connect_timeout" validate:"required,min=1"` // seconds
}

// ProgressConfig holds diagnostic progress logging configuration.
type ProgressConfig struct {
	Every int `mapstructure:"every" validate:"min=0"` // records between progress lines, 0 disables
}

// AggregationConfig holds histogram configuration.
type AggregationConfig struct {
	MissingMetricPolicy string              `mapstructure:"missing_metric_policy" validate:"required,oneof=skip unknown"`
	DefaultGap          int64               `mapstructure:"default_gap" validate:"required,min=1"`
	AuditMetrics        []AuditMetricConfig `mapstructure:"audit_metrics" validate:"dive"`
}

// AuditMetricConfig names one watched lighthouse audit and its bucket width.
type AuditMetricConfig struct {
	Name string `mapstructure:"name" validate:"required"`
	Gap  int64  `mapstructure:"gap" validate:"required,min=1"`
}

// TasksConfig holds task queue population configuration.
type TasksConfig struct {
	SkipFinished bool `mapstructure:"skip_finished"`
}

// ReportConfig holds report rendering configuration.
type ReportConfig struct {
	Format string `mapstructure:"format" validate:"required,oneof=table json"`
}

// FileStorageConfig holds report file storage configuration.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir"` // empty disables persisted reports
}

// MetricsConfig holds metrics export configuration.
type MetricsConfig struct {
	PushgatewayURL string `mapstructure:"pushgateway_url" validate:"omitempty,url"`
}

// ServerConfig holds the optional run-status listener configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"min=0,max=65535"`      // 0 disables the listener
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"min=0"` // seconds
	ShutdownTimeout   int `mapstructure:"shutdown_timeout" validate:"min=0"`    // seconds
}
