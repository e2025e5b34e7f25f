package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"go-quiz/internal/api"
	"go-quiz/internal/app"
	"go-quiz/internal/bridge"
	"go-quiz/internal/config"
	"go-quiz/internal/deck"
	"go-quiz/internal/logging"
	"go-quiz/internal/offline"
	"go-quiz/internal/reporting"
	"go-quiz/internal/tracking"
)

type timerFlag int

func (t *timerFlag) String() string {
	if *t == -1 {
		return "auto"
	}
	return fmt.Sprint(int(*t))
}

func (t *timerFlag) Set(s string) error {
	if s == "true" {
		*t = -1 // Use the configured time
		return nil
	}
	if s == "false" {
		*t = 0 // Disabled
		return nil
	}

	// Try parsing as simple integer first
	if val, err := strconv.Atoi(s); err == nil {
		if val < 0 {
			return fmt.Errorf("invalid timer: %s (must not be negative)", s)
		}
		*t = timerFlag(val)
		return nil
	}

	// Try parsing MM:SS
	parts := strings.Split(s, ":")
	if len(parts) == 2 {
		min, err1 := strconv.Atoi(parts[0])
		sec, err2 := strconv.Atoi(parts[1])
		if err1 == nil && err2 == nil && min >= 0 && sec >= 0 {
			*t = timerFlag(min*60 + sec)
			return nil
		}
	}

	return fmt.Errorf("invalid timer format: %s (use 'MM:SS' or seconds)", s)
}

func (t *timerFlag) IsBoolFlag() bool { return true }

type strictIntFlag int

func (i *strictIntFlag) String() string {
	return fmt.Sprint(int(*i))
}

func (i *strictIntFlag) Set(s string) error {
	if s == "true" {
		return fmt.Errorf("value required (format: -flag=value)")
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*i = strictIntFlag(v)
	return nil
}

func (i *strictIntFlag) IsBoolFlag() bool { return true }

type options struct {
	timer        timerFlag
	noTimer      bool
	questions    strictIntFlag
	questionsSet bool
	apiURL       string
	player       string
	decks        []string
}

// applyTo overrides cfg with the flags that were given.
func (o options) applyTo(cfg config.Config) config.Config {
	if o.timer >= 0 {
		cfg.QuestionTime = time.Duration(o.timer) * time.Second
	}
	if o.noTimer {
		cfg.QuestionTime = 0
	}
	if o.questionsSet {
		cfg.QuestionsPerBattle = int(o.questions)
	}
	if o.apiURL != "" {
		cfg.APIURL = o.apiURL
	}
	if o.player != "" {
		cfg.PlayerName = o.player
	}
	if len(o.decks) > 0 {
		cfg.DeckPaths = o.decks
	}
	return cfg
}

func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	o := options{timer: -1}

	fs.Var(&o.timer, "timer", "Set the countdown per question (e.g. 30 or 0:30).")
	fs.Var(&o.timer, "t", "Set the countdown per question (shorthand)")

	fs.BoolVar(&o.noTimer, "notimer", false, "Disable the timer")
	fs.BoolVar(&o.noTimer, "nt", false, "Disable the timer (shorthand)")

	fs.Var(&o.questions, "questions", "Questions per battle")
	fs.Var(&o.questions, "n", "Questions per battle (shorthand)")

	fs.StringVar(&o.apiURL, "api", "", "Quiz backend URL. Without it decks are played offline.")
	fs.StringVar(&o.player, "player", "", "Player name for offline play")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "n" || f.Name == "questions" {
			o.questionsSet = true
		}
	})
	o.decks = fs.Args()
	return o, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options] [deck files or directories...]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "\nOptions:\n")
	fmt.Fprintf(os.Stderr, "    -t, --timer[=value]    Set the countdown per question (e.g. 30 or 0:30)\n")
	fmt.Fprintf(os.Stderr, "   -nt, --notimer          Disable the timer\n")
	fmt.Fprintf(os.Stderr, "    -n, --questions=N      Questions per battle\n")
	fmt.Fprintf(os.Stderr, "        --api=URL          Play against a quiz backend\n")
	fmt.Fprintf(os.Stderr, "        --player=NAME      Player name for offline play\n")
	fmt.Fprintf(os.Stderr, "    -h, --help             Show this help message\n")
	fmt.Fprintf(os.Stderr, "\nSettings are also read from QUIZ_* environment variables and .env.\n")
}

func newService(cfg config.Config, logger *zap.Logger) (api.Service, error) {
	if !cfg.Offline() {
		return api.NewClient(cfg.APIURL, nil, logger), nil
	}

	cards, err := deck.LoadCards(cfg.DeckPaths)
	if err != nil {
		return nil, err
	}
	return offline.NewService(cards, offline.Options{
		PlayerName:         cfg.PlayerName,
		QuestionsPerBattle: cfg.QuestionsPerBattle,
	}, logger)
}

func run(cfg config.Config) error {
	logger, err := logging.New(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	svc, err := newService(cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("starting quiz", zap.Bool("offline", cfg.Offline()), zap.Duration("question_time", cfg.QuestionTime))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Pixel conversions are recorded by the main trackers too.
	trackers := tracking.NewLog(logger, "trackers")
	model := app.New(ctx, app.Deps{
		Service:      svc,
		Tracker:      trackers,
		Pixel:        tracking.Multi{tracking.NewLog(logger, "pixel"), trackers},
		Reporter:     reporting.NewLog(logger, cfg.Production),
		Bridge:       bridge.NewLocal(cfg.Theme, cfg.NotificationsEnabled, logger),
		Logger:       logger,
		QuestionTime: cfg.QuestionTime,
	})

	if _, err := tea.NewProgram(model, tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func main() {
	flag.Usage = usage
	opts, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	cfg = opts.applyTo(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Invalid configuration: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
