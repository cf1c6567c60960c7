package config

import (
	"github.com/theoremus-urban-solutions/pns-helper/notification"
)

// LogConfig contains logging configuration
type LogConfig struct {
	Level   string `yaml:"level" env:"PNS_LOG_LEVEL" validate:"omitempty,oneof=trace debug info warn error disabled"`
	Console bool   `yaml:"console" env:"PNS_LOG_CONSOLE"`
}

// NotificationConfig contains the builder configuration
type NotificationConfig struct {
	// Codes maps event types to message codes; entries here win over CodesFile
	Codes        notification.CodeTable `yaml:"codes"`
	CodesFile    string                 `yaml:"codesFile" env:"PNS_CODES_FILE"`
	DocumentRoot string                 `yaml:"documentRoot" env:"PNS_XML_ROOT" validate:"required,excludesall= <>&"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Log          LogConfig          `yaml:"log"`
	Notification NotificationConfig `yaml:"notification"`
}

// Default returns the configuration used when no file is present
func Default() AppConfig {
	return AppConfig{
		Log: LogConfig{
			Level:   "info",
			Console: true,
		},
		Notification: NotificationConfig{
			Codes:        notification.CodeTable{},
			DocumentRoot: "document",
		},
	}
}
