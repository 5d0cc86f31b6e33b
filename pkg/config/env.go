package config

// EnvPrefix namespaces every variable read by envconfig.
const EnvPrefix = "QUIZWIZARD"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv   = "QUIZWIZARD_APP_ENV"
	EnvPort     = "QUIZWIZARD_APP_PORT"
	EnvLogLevel = "QUIZWIZARD_LOG_LEVEL"

	EnvDBDSN    = "QUIZWIZARD_DB_DSN"
	EnvDBDriver = "QUIZWIZARD_DB_DRIVER"
	EnvDBHost   = "QUIZWIZARD_DB_HOST"
	EnvDBUser   = "QUIZWIZARD_DB_USER"
	EnvDBName   = "QUIZWIZARD_DB_NAME"

	EnvRedisURL = "QUIZWIZARD_REDIS_URL"

	EnvItemsBaseURL   = "QUIZWIZARD_ITEMS_API_BASE_URL"
	EnvItemsDemoMode  = "QUIZWIZARD_ITEMS_DEMO_MODE_ON_FAILURE"
	EnvItemsTimeout   = "QUIZWIZARD_ITEMS_REQUEST_TIMEOUT"
	EnvSweepInterval  = "QUIZWIZARD_SWEEPER_INTERVAL"
	EnvSweepGraceDays = "QUIZWIZARD_SWEEPER_GRACE_DAYS"

	EnvDashboardPort    = "QUIZWIZARD_DASHBOARD_PORT"
	EnvFabricateMetrics = "QUIZWIZARD_DASHBOARD_FABRICATE_METRICS"

	EnvGCPProjectID     = "QUIZWIZARD_GCP_PROJECT_ID"
	EnvPubSubItemsTopic = "QUIZWIZARD_PUBSUB_ITEMS_TOPIC"
)

const (
	DevItemsBaseURL         = "http://127.0.0.1:8001/api"
	PlaceholderItemsBaseURL = "https://your-production-api.com/api"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
