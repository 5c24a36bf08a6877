package config

// Supported database engines.
const (
	EngineSQLite   = "sqlite"
	EnginePostgres = "postgres"
	EngineMySQL    = "mysql"
)

// DB holds the database configuration settings.
type DB struct {
	Engine   string // sqlite, postgres or mysql
	Path     string // sqlite database file path
	Extras   string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}
