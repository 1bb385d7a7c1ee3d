package cfg

import (
	"os"
	"testing"
)

func TestGetVersion(t *testing.T) {
	// Test default version
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}

	version := GetVersion()
	if version != "dev" && version != "unknown" {
		// This is fine, version could be set at build time
		t.Logf("Version: %s", version)
	}
}

func TestConfigFields(t *testing.T) {
	cfg := &Cfg{
		CMSURL:          "http://cms.example",
		CMSAPIKey:       "test-key",
		RequestTimeout:  10,
		Port:            "8080",
		BaseUrl:         "https://blog.example.com",
		SiteTitle:       "Test Blog",
		SiteDescription: "A test blog",
		UserAgent:       "Test Agent",
		Debug:           true,
		Version:         "test-version",
	}

	if cfg.CMSURL != "http://cms.example" {
		t.Errorf("Expected CMS URL 'http://cms.example', got '%s'", cfg.CMSURL)
	}
	if cfg.CMSAPIKey != "test-key" {
		t.Errorf("Expected API key 'test-key', got '%s'", cfg.CMSAPIKey)
	}
	if cfg.RequestTimeout != 10 {
		t.Errorf("Expected request timeout 10, got %d", cfg.RequestTimeout)
	}
	if cfg.Port != "8080" {
		t.Errorf("Expected port '8080', got '%s'", cfg.Port)
	}
	if cfg.BaseUrl != "https://blog.example.com" {
		t.Errorf("Expected base URL 'https://blog.example.com', got '%s'", cfg.BaseUrl)
	}
	if cfg.SiteTitle != "Test Blog" {
		t.Errorf("Expected site title 'Test Blog', got '%s'", cfg.SiteTitle)
	}
	if cfg.UserAgent != "Test Agent" {
		t.Errorf("Expected user agent 'Test Agent', got '%s'", cfg.UserAgent)
	}
	if !cfg.Debug {
		t.Error("Expected debug to be enabled")
	}
	if cfg.Version != "test-version" {
		t.Errorf("Expected version 'test-version', got '%s'", cfg.Version)
	}
}

func TestLoadDefaults(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"test"}
	defer func() { os.Args = oldArgs }()

	os.Unsetenv("CMS_URL")
	os.Unsetenv("PORT")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if cfg == nil {
		t.Fatal("Expected configuration, got nil")
	}

	if cfg.CMSURL != "http://localhost:3030" {
		t.Errorf("Expected default CMS URL 'http://localhost:3030', got '%s'", cfg.CMSURL)
	}
	if cfg.Port != "8080" {
		t.Errorf("Expected default port '8080', got '%s'", cfg.Port)
	}
	if cfg.RequestTimeout != 10 {
		t.Errorf("Expected default request timeout 10, got %d", cfg.RequestTimeout)
	}

	// Load stores the global config for Get
	if Get() != cfg {
		t.Error("Get should return the loaded configuration")
	}
}
