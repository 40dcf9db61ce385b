package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Tally    Tally
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Tally holds the form provider settings. An empty ApiKey switches the
// form client to its built-in mock document.
type Tally struct {
	ApiKey  string
	BaseURL string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.SetDefault("TALLY_API_URL", "https://api.tally.so")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Tally.ApiKey = viper.GetString("TALLY_API_KEY")
	config.Tally.BaseURL = viper.GetString("TALLY_API_URL")

	log.Info().Str("port", config.Server.Port).Str("database", config.Database.Name).Bool("tally_api_key_set", config.Tally.ApiKey != "").Msg("Config loaded")
	return &config, nil
}
