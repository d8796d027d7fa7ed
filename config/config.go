package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

// SysConfig holds general runtime settings
type SysConfig struct {
	Workdir  string `yaml:"workdir" json:"workdir"`
	Location string `yaml:"location" json:"location"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
}

type LoggerConfig struct {
	Mode       string `yaml:"mode" json:"mode"` // development | production
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

// StorageConfig locates the local collection store file
type StorageConfig struct {
	Path string `yaml:"path" json:"path"`
}

type AppConfig struct {
	System  SysConfig     `yaml:"system" json:"system"`
	Web     WebConfig     `yaml:"web" json:"web"`
	Storage StorageConfig `yaml:"storage" json:"storage"`
	Logger  LoggerConfig  `yaml:"logger" json:"logger"`
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Workdir:  "/var/cafeadmin",
		Location: "America/Lima",
		Debug:    true,
	},
	Web: WebConfig{
		Host: "0.0.0.0",
		Port: 1899,
	},
	Storage: StorageConfig{
		Path: "",
	},
	Logger: LoggerConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/cafeadmin/cafeadmin.log",
	},
}

func setEnvValue(name string, f func(v string)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(evalue)
	}
}

func setEnvBoolValue(name string, f func(v bool)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(evalue == "true" || evalue == "1" || evalue == "on")
	}
}

func setEnvIntValue(name string, f func(v int)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(cast.ToInt(evalue))
	}
}

// LoadConfig reads the YAML config file and applies environment overrides.
// The default configuration is returned when the file does not exist.
func LoadConfig(cfile string) *AppConfig {
	appcfg := new(AppConfig)
	*appcfg = *DefaultAppConfig
	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			loaded := new(AppConfig)
			if err := yaml.Unmarshal(data, loaded); err == nil {
				appcfg = loaded
			}
		}
	}

	setEnvValue("CAFEADMIN_SYSTEM_WORKDIR", func(v string) { appcfg.System.Workdir = v })
	setEnvValue("CAFEADMIN_SYSTEM_LOCATION", func(v string) { appcfg.System.Location = v })
	setEnvBoolValue("CAFEADMIN_SYSTEM_DEBUG", func(v bool) { appcfg.System.Debug = v })

	setEnvValue("CAFEADMIN_WEB_HOST", func(v string) { appcfg.Web.Host = v })
	setEnvIntValue("CAFEADMIN_WEB_PORT", func(v int) { appcfg.Web.Port = v })

	setEnvValue("CAFEADMIN_STORAGE_PATH", func(v string) { appcfg.Storage.Path = v })

	setEnvValue("CAFEADMIN_LOGGER_MODE", func(v string) { appcfg.Logger.Mode = v })
	setEnvBoolValue("CAFEADMIN_LOGGER_FILE_ENABLE", func(v bool) { appcfg.Logger.FileEnable = v })
	setEnvValue("CAFEADMIN_LOGGER_FILENAME", func(v string) { appcfg.Logger.Filename = v })

	if appcfg.Storage.Path == "" {
		appcfg.Storage.Path = filepath.Join(appcfg.System.Workdir, "cafeadmin.db")
	}

	return appcfg
}
