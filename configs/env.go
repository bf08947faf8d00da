package configs

import (
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName string
	PropertiesFile  string
	MessagesFile    string
}

// LoadEnv reads the bootstrap settings that locate the property and message files.
func LoadEnv() *EnvConfig {
	env := viper.New()
	env.AutomaticEnv()

	return &EnvConfig{
		ApplicationName: getStringOrDefault(env, "APPLICATION_NAME", "todo-api"),
		PropertiesFile:  env.GetString("PROPERTIES_FILE_PATH"),
		MessagesFile:    env.GetString("MESSAGES_FILE_PATH"),
	}
}

func getStringOrDefault(env *viper.Viper, key, defaultValue string) string {
	value := env.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
