package config

import (
	"errors"
	"os"
	"strings"

	"github.com/campusfm/projectperm/pkg/perm"
	"github.com/campusfm/projectperm/pkg/rbac"
	"github.com/campusfm/projectperm/pkg/seed"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const EnvPrefix = "PROJECTPERM"

// Department is listed rather than keyed by name because viper lowercases
// map keys.
type Department struct {
	Name       string   `mapstructure:"name"`
	Categories []string `mapstructure:"categories"`
}

type Seed struct {
	Policy      string            `mapstructure:"policy"`
	Assignments []perm.Assignment `mapstructure:"assignments"`
}

type Config struct {
	Departments []Department `mapstructure:"departments"`
	Seed        Seed         `mapstructure:"seed"`
}

type Option func(*loader)

type loader struct {
	envFile string
}

// WithEnvFile loads variables from a dotenv file before environment
// overrides are read. A missing file is ignored. Variables already set in
// the environment win.
func WithEnvFile(path string) Option {
	return func(l *loader) {
		l.envFile = path
	}
}

// Load reads the policy file at path, which may be empty, and applies
// PROJECTPERM_ environment overrides such as PROJECTPERM_SEED_POLICY.
func Load(path string, opts ...Option) (*Config, error) {
	l := &loader{}
	for _, opt := range opts {
		opt(l)
	}

	if l.envFile != "" {
		if err := godotenv.Load(l.envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	v := viper.New()
	v.SetDefault("seed.policy", string(seed.PolicyAlways))
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if _, err := seed.ParsePolicy(cfg.Seed.Policy); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Policy returns the configured department allow-list, or the built-in one
// when none is configured.
func (c *Config) Policy() rbac.Policy {
	if len(c.Departments) == 0 {
		return rbac.DefaultPolicy()
	}

	policy := rbac.Policy{Departments: make(map[string][]perm.Category, len(c.Departments))}
	for _, d := range c.Departments {
		categories := make([]perm.Category, 0, len(d.Categories))
		for _, category := range d.Categories {
			categories = append(categories, perm.Category(category))
		}
		policy.Departments[d.Name] = categories
	}

	return policy
}

func (c *Config) SeedPolicy() seed.Policy {
	policy, err := seed.ParsePolicy(c.Seed.Policy)
	if err != nil {
		return seed.PolicyAlways
	}

	return policy
}

func (c *Config) SeedAssignments() []perm.Assignment {
	if len(c.Seed.Assignments) == 0 {
		return seed.DefaultAssignments()
	}

	return c.Seed.Assignments
}
