package config

import (
	"time"

	"github.com/festa-familia/festa-admin/internal/logger"
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
	Admin     Admin
	Media     Media
	Title     string
	Webserver Webserver
}

// Admin holds the single shared admin credential seeded at first start.
type Admin struct {
	Username string // admin login name
	Password string // initial plaintext password, hashed before storage
}

// Media holds the settings for the external image hosting collaborator.
type Media struct {
	URL     string        // base url of the media upload endpoint
	APIKey  string        // api key sent with every upload
	Timeout time.Duration // how long to wait for an upload to complete
}

// Webserver implement webserver settings.
type Webserver struct {
	CacheEnabled        bool    // true = enable public page caching, false = disable
	DisableRecover      bool    // disable recover middleware
	Domain              string  // domain name for the webserver
	Port                int     // listening port for the webserver
	ShutDownTime        int     // wait time for shutdown
	URL                 string  // base url for the webserver
	CookieEncryptionKey string  // encryption key for cookies
	Session             Session // session settings
}
