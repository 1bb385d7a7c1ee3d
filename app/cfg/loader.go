package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Content API configuration
	CMSURL         string `long:"cms-url" env:"CMS_URL" default:"http://localhost:3030" description:"Content API origin, also the prefix for relative media URLs"`
	CMSAPIKey      string `long:"cms-api-key" env:"CMS_API_KEY" description:"Bearer credential for the content API (optional)"`
	RequestTimeout int    `long:"request-timeout" env:"REQUEST_TIMEOUT" default:"10" description:"Content API request timeout in seconds"`

	// HTTP server configuration
	Port    string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	BaseUrl string `long:"base-url" env:"BASE_URL" description:"Public base URL of the site (e.g., https://blog.example.com)"`

	// Site metadata
	SiteTitle       string `long:"site-title" env:"SITE_TITLE" default:"Blog" description:"Site title for the RSS channel"`
	SiteDescription string `long:"site-description" env:"SITE_DESCRIPTION" description:"Site description for the RSS channel"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"CMS Bridge/1.0" description:"User agent string for outbound HTTP requests"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		CMSURL:          raw.CMSURL,
		CMSAPIKey:       raw.CMSAPIKey,
		RequestTimeout:  raw.RequestTimeout,
		Port:            raw.Port,
		BaseUrl:         raw.BaseUrl,
		SiteTitle:       raw.SiteTitle,
		SiteDescription: raw.SiteDescription,
		UserAgent:       raw.UserAgent,
		Debug:           raw.Debug,
		Version:         GetVersion(),
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}
