package config

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
)

type SettingsType struct {
	m    map[string]SettingType
	file map[string]string
}

type SettingType struct {
	Description string
	Value       string
	Source      string
}

const (
	sourceEnv     = "env"
	sourceFile    = "file"
	sourceDefault = "default"
)

// NewSettingType resolves every known setting from the environment, then
// the optional CONFIG_FILE, then the built-in default.
func NewSettingType(print bool) (*SettingsType, error) {
	s := &SettingsType{m: make(map[string]SettingType)}

	if path, ok := os.LookupEnv(CONFIG_FILE); ok && strings.TrimSpace(path) != "" {
		values, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		s.file = values
	}

	s.Set(LISTEN_ADDR, "Server listen address", ":8080")
	s.Set(SITE_NAME, "Site name shown on the login page", "Vidyodaya")
	s.Set(LOG_LEVEL, "Log level (debug, info, warn, error)", "info")
	s.Set(LOG_FORMAT, "Log format (console, json)", "console")
	s.Set(TLS_ENABLED, "Serve HTTPS with a self-signed certificate", "false")
	s.Set(TLS_CERT_FILE, "TLS certificate path", "certs/server.crt")
	s.Set(TLS_KEY_FILE, "TLS private key path", "certs/server.key")
	s.Set(TLS_HOSTS, "Comma separated hostnames for the self-signed certificate", "localhost")
	s.Set(COMPRESS_RESPONSES, "Gzip compress responses", "true")
	s.Set(METRICS_ENABLED, "Expose prometheus metrics on /metrics", "true")
	s.Set(SEED_ROLES, "Create the ADMIN, USER and DATA roles at startup", "true")
	s.Set(SHUTDOWN_TIMEOUT, "Graceful shutdown deadline", "10s")

	if print {
		s.Print(os.Stdout)
	}
	return s, nil
}

func (s *SettingsType) Print(w io.Writer) {
	keys := make([]string, 0, len(s.m))
	for key := range s.m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	table := tablewriter.NewWriter(w)
	table.Header("KEY", "Description", "value", "source")
	for _, key := range keys {
		setting := s.m[key]
		table.Append([]string{key, setting.Description, setting.Value, setting.Source})
	}
	table.Render()
}

func (s *SettingsType) Get(id string) string {
	return s.m[id].Value
}

func (s *SettingsType) Source(id string) string {
	return s.m[id].Source
}

func (s *SettingsType) Has(id string) bool {
	return len(s.m[id].Value) > 0
}

func (s *SettingsType) IsTrue(id string) bool {
	v := strings.ToLower(strings.TrimSpace(s.m[id].Value))
	return v == "1" || v == "true" || v == "yes"
}

func (s *SettingsType) Duration(id string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(s.m[id].Value))
	if err != nil {
		return 0, fmt.Errorf("setting %s: %w", id, err)
	}
	return d, nil
}

// List splits a comma separated value, dropping empty entries.
func (s *SettingsType) List(id string) []string {
	var out []string
	for _, part := range strings.Split(s.m[id].Value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (s *SettingsType) Set(id string, description string, defaultValue string) {
	if value, ok := os.LookupEnv(id); ok {
		s.m[id] = SettingType{Description: description, Value: value, Source: sourceEnv}
	} else if value, ok := s.file[id]; ok {
		s.m[id] = SettingType{Description: description, Value: value, Source: sourceFile}
	} else {
		s.m[id] = SettingType{Description: description, Value: defaultValue, Source: sourceDefault}
	}
}

const (
	CONFIG_FILE        = "CONFIG_FILE"
	LISTEN_ADDR        = "LISTEN_ADDR"
	SITE_NAME          = "SITE_NAME"
	LOG_LEVEL          = "LOG_LEVEL"
	LOG_FORMAT         = "LOG_FORMAT"
	TLS_ENABLED        = "TLS_ENABLED"
	TLS_CERT_FILE      = "TLS_CERT_FILE"
	TLS_KEY_FILE       = "TLS_KEY_FILE"
	TLS_HOSTS          = "TLS_HOSTS"
	COMPRESS_RESPONSES = "COMPRESS_RESPONSES"
	METRICS_ENABLED    = "METRICS_ENABLED"
	SEED_ROLES         = "SEED_ROLES"
	SHUTDOWN_TIMEOUT   = "SHUTDOWN_TIMEOUT"
)
