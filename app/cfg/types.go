package cfg

type Cfg struct {
	// Content API configuration
	CMSURL         string
	CMSAPIKey      string
	RequestTimeout int

	// HTTP server configuration
	Port    string
	BaseUrl string

	// Site metadata (used for the RSS channel)
	SiteTitle       string
	SiteDescription string

	// Application metadata
	UserAgent string
	Debug     bool
	Version   string
}
