package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// loadFile reads a flat YAML mapping of setting keys to values. Keys are
// matched case-insensitively against the setting names and ${VAR}
// references are expanded from the environment before parsing.
func loadFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var raw map[string]any
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	values := make(map[string]string, len(raw))
	for key, v := range raw {
		name := strings.ToUpper(strings.TrimSpace(key))
		switch val := v.(type) {
		case nil:
			values[name] = ""
		case string:
			values[name] = val
		case bool, int, int64, float64:
			values[name] = fmt.Sprint(val)
		case []any:
			parts := make([]string, 0, len(val))
			for _, item := range val {
				parts = append(parts, fmt.Sprint(item))
			}
			values[name] = strings.Join(parts, ",")
		default:
			return nil, fmt.Errorf("config key %q: unsupported value type %T", key, v)
		}
	}
	return values, nil
}
