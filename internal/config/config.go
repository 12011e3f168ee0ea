package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/forsitet/kanban-board/internal/domain"
)

const DefaultSourceURL = "https://api.quicksell.co/v1/internal/frontend-assignment"

type HTTPConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type SourceConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

type BoardConfig struct {
	Grouping string `yaml:"grouping"`
	Ordering string `yaml:"ordering"`
}

type Config struct {
	Env    string       `yaml:"env"`
	HTTP   *HTTPConfig  `yaml:"http"`
	Source SourceConfig `yaml:"source"`
	Board  BoardConfig  `yaml:"board"`
}

func (c Config) HTTPAddr() string {
	if c.HTTP == nil || c.HTTP.Addr == "" {
		return ":8080"
	}
	return c.HTTP.Addr
}

// DefaultGrouping returns the configured grouping; Load has already
// validated it.
func (c Config) DefaultGrouping() domain.Grouping {
	g, err := domain.ParseGrouping(c.Board.Grouping)
	if err != nil {
		return domain.GroupByStatus
	}
	return g
}

func (c Config) DefaultOrdering() domain.Ordering {
	o, err := domain.ParseOrdering(c.Board.Ordering)
	if err != nil {
		return domain.OrderByPriority
	}
	return o
}

func Default() *Config {
	return &Config{
		Env: "dev",
		HTTP: &HTTPConfig{
			Addr:            ":8080",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Source: SourceConfig{
			URL:     DefaultSourceURL,
			Timeout: 10 * time.Second,
		},
		Board: BoardConfig{
			Grouping: string(domain.GroupByStatus),
			Ordering: string(domain.OrderByPriority),
		},
	}
}

func load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	// #nosec G304 -- config file path is provided via command line flag
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config yaml: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.HTTP == nil {
		c.HTTP = Default().HTTP
	}
	if c.Source.URL == "" {
		return fmt.Errorf("source url must be set in config")
	}
	if c.Source.Timeout <= 0 {
		c.Source.Timeout = Default().Source.Timeout
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		c.HTTP.ShutdownTimeout = Default().HTTP.ShutdownTimeout
	}
	if _, err := domain.ParseGrouping(c.Board.Grouping); err != nil {
		return fmt.Errorf("board grouping: %w", err)
	}
	if _, err := domain.ParseOrdering(c.Board.Ordering); err != nil {
		return fmt.Errorf("board ordering: %w", err)
	}
	return nil
}

// Options are the command line switches that are not part of the config
// file.
type Options struct {
	ConfigPath string
	Print      bool
	Grouping   string
	Ordering   string
}

func parseFlags(args []string) (Options, error) {
	var opts Options

	fs := pflag.NewFlagSet("kanban-board", pflag.ContinueOnError)
	fs.StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file")
	fs.BoolVar(&opts.Print, "print", false, "Print the board to the terminal and exit")
	fs.StringVar(&opts.Grouping, "group", "", "Grouping for --print: status, user or priority")
	fs.StringVar(&opts.Ordering, "order", "", "Ordering for --print: priority or title")

	if err := fs.Parse(args); err != nil {
		return Options{}, fmt.Errorf("parse flags: %w", err)
	}

	return opts, nil
}

// ParseConfig reads flags from args (without the program name) and loads
// the config file they point at. Flag values override the board defaults.
func ParseConfig(args []string) (*Config, Options, error) {
	opts, err := parseFlags(args)
	if err != nil {
		return nil, Options{}, err
	}

	cfg, err := load(opts.ConfigPath)
	if err != nil {
		return nil, Options{}, err
	}

	if opts.Grouping != "" {
		if _, err := domain.ParseGrouping(opts.Grouping); err != nil {
			return nil, Options{}, fmt.Errorf("--group: %w", err)
		}
		cfg.Board.Grouping = opts.Grouping
	}
	if opts.Ordering != "" {
		if _, err := domain.ParseOrdering(opts.Ordering); err != nil {
			return nil, Options{}, fmt.Errorf("--order: %w", err)
		}
		cfg.Board.Ordering = opts.Ordering
	}

	return cfg, opts, nil
}
