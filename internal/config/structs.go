package config

import (
	"time"

	"github.com/brightpage/brightpage/internal/logger"
)

const (
	// DefaultSessionExpiry is used when webserver.session.expirytime is unset.
	DefaultSessionExpiry = 24 * time.Hour

	// DefaultUploadMaxSize caps uploads at 10 MiB unless configured.
	DefaultUploadMaxSize = 10 * 1024 * 1024
)

// Session settings.
type Session struct {
	ExpiryTime time.Duration
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Uploads   Uploads
	Auth      Auth
}

// Webserver implement webserver settings.
type Webserver struct {
	Domain       string  // domain name for the webserver
	Port         int     // listening port for the webserver
	ShutDownTime int     // wait time in seconds before shutdown
	URL          string  // base url for the webserver
	Session      Session // session settings
}

// Uploads holds upload handling settings.
type Uploads struct {
	Dir        string // directory where uploaded files are stored
	MaxSize    int64  // maximum accepted file size in bytes
	PublicPath string // URL prefix uploaded files are served from
}

// LocalAuth holds local username/password authentication settings.
type LocalAuth struct {
	Enabled bool
}

// OIDCAuth holds OpenID Connect authentication settings.
type OIDCAuth struct {
	Enabled      bool
	ProviderURL  string
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

// Auth groups the available authentication methods.
type Auth struct {
	Local LocalAuth
	OIDC  OIDCAuth
}
