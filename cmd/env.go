package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/dhabedank/daybyday/internal/core"
	"github.com/dhabedank/daybyday/internal/llm"
	"github.com/dhabedank/daybyday/internal/session"
	"github.com/dhabedank/daybyday/internal/store"
)

const (
	defaultUser    = "local"
	defaultDataDir = "daybyday_data"
	configFileName = ".daybyday.yaml"
)

// fileConfig is the on-disk configuration shape.
type fileConfig struct {
	Provider string `yaml:"provider,omitempty"`
	Model    string `yaml:"model,omitempty"`
	APIKey   string `yaml:"api_key,omitempty"`
	DataDir  string `yaml:"data_dir,omitempty"`
	User     string `yaml:"user,omitempty"`
}

// loadFileConfig reads the config file, looking in the current directory
// first and the home directory second. A missing file is not an error.
func loadFileConfig() (fileConfig, string) {
	path := flagConfig
	if path == "" {
		if _, err := os.Stat(configFileName); err == nil {
			path = configFileName
		} else if home, err := os.UserHomeDir(); err == nil {
			homePath := filepath.Join(home, configFileName)
			if _, err := os.Stat(homePath); err == nil {
				path = homePath
			}
		}
	}
	if path == "" {
		return fileConfig{}, ""
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, ""
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fileConfig{}, ""
	}
	return cfg, path
}

// saveFileConfig writes the config to the home directory file.
func saveFileConfig(cfg fileConfig) (string, error) {
	path := configFileName
	if home, err := os.UserHomeDir(); err == nil {
		path = filepath.Join(home, configFileName)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", err
	}
	return path, os.WriteFile(path, data, 0644)
}

// appEnv bundles the stores and the live session for one invocation.
type appEnv struct {
	cfg      fileConfig
	user     string
	projects *store.ProjectStore
	sessions *store.SessionStore
	feed     *store.FeedStore
	users    *store.UserStore
	session  *session.Manager
}

// openEnv resolves config, opens the data directory, registers the user on
// first use, and restores their session checkpoint.
func openEnv() (*appEnv, error) {
	cfg, _ := loadFileConfig()

	user := flagUser
	if user == "" {
		user = cfg.User
	}
	if user == "" {
		user = defaultUser
	}

	dataDir := flagDataDir
	if dataDir == "" {
		dataDir = os.Getenv("DATA_DIR")
	}
	if dataDir == "" {
		dataDir = cfg.DataDir
	}
	if dataDir == "" {
		dataDir = defaultDataDir
	}

	files, err := store.NewFileStore(dataDir)
	if err != nil {
		return nil, err
	}

	env := &appEnv{
		cfg:      cfg,
		user:     user,
		projects: store.NewProjectStore(files),
		sessions: store.NewSessionStore(files),
		feed:     store.NewFeedStore(files),
		users:    store.NewUserStore(files),
	}
	if _, err := env.users.Ensure(user); err != nil {
		return nil, err
	}
	env.session = session.Load(env.sessions, user)
	return env, nil
}

// generator builds the plan generator. A missing credential is not an
// error here: the generator falls back to scripted output and reports why.
func (e *appEnv) generator() *core.Generator {
	adapter, err := llm.Detect(llm.Config{
		Provider: e.cfg.Provider,
		Model:    e.cfg.Model,
		APIKey:   e.cfg.APIKey,
	})
	if err != nil {
		return core.NewGenerator(nil)
	}
	return core.NewGenerator(adapter)
}

// modelLabel names the configured model for status lines.
func (e *appEnv) modelLabel() string {
	if e.cfg.Model != "" {
		return e.cfg.Model
	}
	if e.cfg.Provider != "" {
		return e.cfg.Provider
	}
	return "auto"
}

// draft returns the live project draft, which every interactive edit
// targets.
func (e *appEnv) draft() (*core.Project, error) {
	if d := e.session.Session().Draft; d != nil {
		return d, nil
	}
	return nil, fmt.Errorf("no active plan - run 'daybyday plan new' or 'daybyday plan open' first")
}

// dayArg parses a 1-based day number into a 0-based index.
func dayArg(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > core.Days {
		return 0, fmt.Errorf("day must be a number from 1 to %d", core.Days)
	}
	return n - 1, nil
}

// idArg parses a task ID.
func idArg(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("task id must be a non-negative number")
	}
	return n, nil
}
