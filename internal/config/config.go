package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Version is overridden at build time via -ldflags.
var Version = "dev"

const (
	EnvInstanceURL = "COOLIFY_INSTANCE_URL"
	EnvToken       = "COOLIFY_TOKEN"
	EnvLogLevel    = "COOLIFY_CTL_LOG_LEVEL"

	keyInstanceURL   = "instance_url"
	keyToken         = "token"
	keyClientTimeout = "client_timeout"

	defaultClientTimeout = 30 * time.Second
)

// ConfigDir returns the directory holding the CLI configuration file.
func ConfigDir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".coolify-ctl"), nil
}

func configFile() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func load() (*viper.Viper, error) {
	file, err := configFile()
	if err != nil {
		return nil, err
	}
	v := viper.New()
	v.SetConfigFile(file)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	return v, nil
}

// GetInstanceURL returns the base URL of the target instance. The
// environment variable wins over the config file.
func GetInstanceURL() (string, error) {
	if u := strings.TrimSpace(os.Getenv(EnvInstanceURL)); u != "" {
		return strings.TrimRight(u, "/"), nil
	}
	v, err := load()
	if err != nil {
		return "", err
	}
	u := strings.TrimSpace(v.GetString(keyInstanceURL))
	if u == "" {
		return "", ErrInstanceURLNotConfigured
	}
	return strings.TrimRight(u, "/"), nil
}

// GetToken returns the API token. The environment variable wins over the
// config file.
func GetToken() (string, error) {
	if t := strings.TrimSpace(os.Getenv(EnvToken)); t != "" {
		return t, nil
	}
	v, err := load()
	if err != nil {
		return "", err
	}
	t := strings.TrimSpace(v.GetString(keyToken))
	if t == "" {
		return "", ErrTokenNotConfigured
	}
	return t, nil
}

// SetAuth persists the instance URL and/or token; empty arguments leave the
// stored value untouched.
func SetAuth(instanceURL, token string) error {
	v, err := load()
	if err != nil {
		return err
	}
	if instanceURL = strings.TrimSpace(instanceURL); instanceURL != "" {
		v.Set(keyInstanceURL, strings.TrimRight(instanceURL, "/"))
	}
	if token = strings.TrimSpace(token); token != "" {
		v.Set(keyToken, token)
	}
	return write(v)
}

// RemoveAuth clears the stored token, keeping the instance URL.
func RemoveAuth() error {
	v, err := load()
	if err != nil {
		return err
	}
	v.Set(keyToken, "")
	return write(v)
}

func write(v *viper.Viper) error {
	file, err := configFile()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o700); err != nil {
		return err
	}
	return v.WriteConfigAs(file)
}

// GetClientTimeout returns the HTTP client timeout, configurable through the
// client_timeout key.
func GetClientTimeout() time.Duration {
	v, err := load()
	if err != nil {
		return defaultClientTimeout
	}
	if d := v.GetDuration(keyClientTimeout); d > 0 {
		return d
	}
	return defaultClientTimeout
}

// GetLogLevel returns the configured zerolog level name, defaulting to info.
func GetLogLevel() string {
	if lvl := strings.TrimSpace(os.Getenv(EnvLogLevel)); lvl != "" {
		return strings.ToLower(lvl)
	}
	return "info"
}

// IsDebugLogLevel reports whether request/response dumps should be logged.
func IsDebugLogLevel() bool {
	lvl := GetLogLevel()
	return lvl == "debug" || lvl == "trace"
}
