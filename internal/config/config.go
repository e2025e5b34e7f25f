package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/multierr"
)

// Config holds the settings shared by the quiz client and the development server.
type Config struct {
	Production           bool          `env:"QUIZ_PRODUCTION" envDefault:"false"`
	APIURL               string        `env:"QUIZ_API_URL"`
	DeckPaths            []string      `env:"QUIZ_DECKS" envSeparator:":"`
	Theme                string        `env:"QUIZ_THEME" envDefault:"bright_light"`
	NotificationsEnabled bool          `env:"QUIZ_NOTIFICATIONS" envDefault:"true"`
	QuestionTime         time.Duration `env:"QUIZ_QUESTION_TIME" envDefault:"20s"`
	QuestionsPerBattle   int           `env:"QUIZ_QUESTIONS" envDefault:"5"`
	LogFile              string        `env:"QUIZ_LOG_FILE" envDefault:"quiz.log"`
	ListenAddr           string        `env:"QUIZ_LISTEN_ADDR" envDefault:":8080"`
	PlayerName           string        `env:"QUIZ_PLAYER" envDefault:"player"`
}

// Load reads an optional .env file from the working directory and then
// parses the environment.
func Load() (Config, error) {
	return LoadFiles(".env")
}

// LoadFiles is Load with explicit dotenv files. Missing files are skipped.
func LoadFiles(files ...string) (Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Offline reports whether the client should use the in-process backend.
func (c Config) Offline() bool {
	return c.APIURL == ""
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var err error
	if c.QuestionTime < 0 {
		err = multierr.Append(err, fmt.Errorf("question time must not be negative, got %s", c.QuestionTime))
	}
	if c.QuestionsPerBattle < 1 {
		err = multierr.Append(err, fmt.Errorf("questions per battle must be at least 1, got %d", c.QuestionsPerBattle))
	}
	if c.Offline() && len(c.DeckPaths) == 0 {
		err = multierr.Append(err, errors.New("no decks given for offline play"))
	}
	if !c.Offline() {
		if u, perr := url.Parse(c.APIURL); perr != nil || u.Scheme == "" || u.Host == "" {
			err = multierr.Append(err, fmt.Errorf("invalid api url %q", c.APIURL))
		}
	}
	if c.LogFile == "" {
		err = multierr.Append(err, errors.New("log file must be set"))
	}
	return err
}
