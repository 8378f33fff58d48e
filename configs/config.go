package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/raksitnongbua/office-bot/constants"
)

type Config struct {
	AuthToken  string        `env:"AUTH_TOKEN,required"`
	APIURL     string        `env:"API_URL"`
	APITimeout time.Duration `env:"API_TIMEOUT" envDefault:"30s"`

	SlackBotToken string `env:"SLACK_BOT_TOKEN"`
	SlackChannel  string `env:"SLACK_CHANNEL"`

	RoomDefinitionPath string `env:"ROOM_DEFINITION_PATH" envDefault:"room-definition.md"`
	RoomImagesPath     string `env:"ROOM_IMAGES_PATH"`
	ImagesDir          string `env:"IMAGES_DIR" envDefault:"."`
	Timezone           string `env:"TIMEZONE"`

	NotifyOnError      bool `env:"NOTIFY_ON_ERROR" envDefault:"false"`
	NotifyWorkFromHome bool `env:"NOTIFY_WORK_FROM_HOME" envDefault:"false"`
	UploadFallbackText bool `env:"UPLOAD_FALLBACK_TEXT" envDefault:"false"`

	ServeAddr string `env:"SERVE_ADDR" envDefault:":3001"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads the dotenv file (when present) and then the process
// environment. Values already set in the environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("configs: load %s: %w", envFile, err)
		}
	}
	return Parse()
}

func Parse() (Config, error) {
	var conf Config
	if err := env.Parse(&conf); err != nil {
		return Config{}, fmt.Errorf("configs: %w", err)
	}
	conf.applyDefaults()
	return conf, nil
}

func (c *Config) applyDefaults() {
	c.APIURL = strings.TrimSpace(c.APIURL)
	if c.APIURL == "" {
		c.APIURL = constants.DefaultAPIURL
	}
	c.SlackChannel = strings.TrimSpace(c.SlackChannel)
	if c.SlackChannel == "" {
		c.SlackChannel = constants.DefaultSlackChannel
	}
}

// Validate checks the settings a run depends on. Slack credentials are only
// needed when something may actually be posted.
func (c Config) Validate(dryRun bool) error {
	if strings.TrimSpace(c.AuthToken) == "" {
		return fmt.Errorf("configs: AUTH_TOKEN is empty")
	}
	if !dryRun && strings.TrimSpace(c.SlackBotToken) == "" {
		return fmt.Errorf("configs: SLACK_BOT_TOKEN is required unless running with --dry-run")
	}
	if c.SlackChannel == "" {
		return fmt.Errorf("configs: SLACK_CHANNEL is empty")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location returns the timezone used to decide what "today" is.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("configs: TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}
