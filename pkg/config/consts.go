package config

// EnvPrefix namespaces the service's environment variables.
const EnvPrefix = "andes"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "ANDES_DB_DSN"
	EnvDBHost = "ANDES_DB_HOST"
	EnvDBUser = "ANDES_DB_USER"
	EnvDBName = "ANDES_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
