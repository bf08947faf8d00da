package resource

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"
)

var (
	props      = viper.New()
	envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)
)

// Init loads application properties from a YAML file.
func Init(filepath string) error {
	props.SetConfigFile(filepath)
	props.SetConfigType("yml")

	if err := props.ReadInConfig(); err != nil {
		return fmt.Errorf("reading properties file %s: %w", filepath, err)
	}
	resolveAll("", props.AllSettings())
	return nil
}

// Load reads application properties from YAML content.
func Load(data []byte) error {
	props.SetConfigType("yml")

	if err := props.ReadConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("reading properties: %w", err)
	}
	resolveAll("", props.AllSettings())
	return nil
}

// resolveAll walks the YAML tree replacing ${ENV:default} placeholders in string leaves.
func resolveAll(prefix string, data map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			props.Set(fullKey, resolveEnvVariable(v))
		case map[string]any:
			resolveAll(fullKey, v)
		}
	}
}

// resolveEnvVariable expands every ${ENV:default} occurrence in value.
// Unset variables without a default expand to an empty string.
func resolveEnvVariable(value string) string {
	return envPattern.ReplaceAllStringFunc(value, func(match string) string {
		groups := envPattern.FindStringSubmatch(match)
		if envValue, exists := os.LookupEnv(groups[1]); exists {
			return envValue
		}
		return groups[2]
	})
}

// Set overrides a property at runtime.
func Set(key string, value any) {
	props.Set(key, value)
}

func Get(key string) any {
	return props.Get(key)
}

func GetString(key string) string {
	return props.GetString(key)
}

func GetBool(key string) bool {
	return props.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return props.GetDuration(key)
}

func GetInt(key string) int {
	return props.GetInt(key)
}

func GetInt64(key string) int64 {
	return props.GetInt64(key)
}

func GetFloat64(key string) float64 {
	return props.GetFloat64(key)
}

func GetStringSlice(key string) []string {
	return props.GetStringSlice(key)
}
