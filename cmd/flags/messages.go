package flags

const (
	failedToParseTLSCredentials = "failed-to-parse-tls-credentials"
	failedToOpenSQLConnection   = "failed-to-open-sql-connection"
	failedToConnectToStatsD     = "failed-to-connect-to-statsd"
	failedToCreateOIDCProvider  = "failed-to-create-oidc-provider"
)
