/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/josephgoksu/smarttask/types"
	"github.com/spf13/viper"
)

const (
	configName = ".smarttask"
	envPrefix  = "SMARTTASK"
)

// validate is a single instance of Validate, it caches struct info
var validate = validator.New()

// InitConfig reads in config file and ENV variables if set.
func InitConfig() {
	// Load .env file first if present; it's fine if there isn't one.
	_ = godotenv.Load()

	// Environment variable handling must be set up BEFORE reading the config
	// file, so env vars can influence config loading.
	viper.SetEnvPrefix(envPrefix) // e.g., SMARTTASK_VERBOSE
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("project.rootDir", ".smarttask")
	viper.SetDefault("data.file", "tasks.db")

	if cfgFileFlag := viper.GetString("config"); cfgFileFlag != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFileFlag)
	} else {
		viper.SetConfigName(configName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; everything has a default. Anything
		// else (unreadable file, bad YAML) is worth a notice in verbose mode.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && viper.GetBool("verbose") {
			fmt.Fprintf(os.Stderr, "Warning: could not read config file: %v\n", err)
		}
	}
}

// GetConfig unmarshals the current viper state into the typed AppConfig.
func GetConfig() types.AppConfig {
	var config types.AppConfig
	if err := viper.Unmarshal(&config); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: unable to decode config: %v\n", err)
	}
	if err := validate.Struct(&config); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: invalid config: %v\n", err)
	}
	return config
}
