package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

type Config struct {
	App
	PostgreSQL
	HTTP
}

type App struct {
	MediaDirectory  string
	ImportDirectory string
	LogLevel        string
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int32
}

type HTTP struct {
	Host            string
	Port            string
	IdleTimeout     time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	MaxUploadSize   int64
}

// Client configures the command line client of the API.
type Client struct {
	BaseURL  string
	Token    string
	Timeout  time.Duration
	LogLevel string
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			MediaDirectory:  cmd.String("media-dir"),
			ImportDirectory: cmd.String("dir"),
			LogLevel:        cmd.String("log-level"),
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
			SSLMode:  cmd.String("pg-sslmode"),
			MaxConns: int32(cmd.Int("pg-max-conns")),
		},
		HTTP: HTTP{
			Host:            cmd.String("http-host"),
			Port:            cmd.String("http-port"),
			IdleTimeout:     cmd.Duration("http-idle-timeout"),
			ReadTimeout:     cmd.Duration("http-read-timeout"),
			WriteTimeout:    cmd.Duration("http-write-timeout"),
			ShutdownTimeout: cmd.Duration("http-shutdown-timeout"),
			MaxUploadSize:   cmd.Int64("http-max-upload-size"),
		},
	}
}

func LoadClient(cmd *cli.Command) *Client {
	return &Client{
		BaseURL:  cmd.String("api-url"),
		Token:    cmd.String("token"),
		Timeout:  cmd.Duration("timeout"),
		LogLevel: cmd.String("log-level"),
	}
}
