package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/buttonkit/internal/config"
	"github.com/alexisbeaulieu97/buttonkit/internal/logger"
	"github.com/alexisbeaulieu97/buttonkit/internal/tokens"
)

// appContext bundles what every command needs: the loaded configuration, a
// logger, and the token store built under that configuration.
type appContext struct {
	Config     *config.Config
	ConfigPath string
	BaseDir    string
	Store      *tokens.Store
	Logger     *logger.Logger
}

func (f *rootFlags) newLogger(cmd *cobra.Command, cfgLevel string) (*logger.Logger, error) {
	level := f.logLevel
	if level == "" {
		level = cfgLevel
	}
	if f.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{
		Level:         level,
		HumanReadable: true,
		NoColor:       f.noColor,
		Writer:        cmd.ErrOrStderr(),
	})
}

// loadConfig reads --config, falls back to a buttonkit config in the working
// directory, and finally to the built-in defaults.
func (f *rootFlags) loadConfig() (*config.Config, string, error) {
	path := f.configPath
	if path != "" {
		if err := validateConfigPath(path); err != nil {
			return nil, "", err
		}
	} else {
		path = discoverConfig(".")
	}

	if path == "" {
		return config.Default(), "", nil
	}

	cfg, err := config.ParseConfig(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func (f *rootFlags) load(cmd *cobra.Command) (*appContext, error) {
	cfg, path, err := f.loadConfig()
	if err != nil {
		return nil, err
	}

	log, err := f.newLogger(cmd, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	baseDir := "."
	if path != "" {
		baseDir = filepath.Dir(path)
		log.WithFields(map[string]any{"config": path}).Debug("configuration loaded")
	}

	store, err := tokens.New(tokens.Options{
		Allowlist: tokens.Allowlist(cfg.Allowlist),
		Strict:    cfg.Strict,
	})
	if err != nil {
		return nil, err
	}

	return &appContext{
		Config:     cfg,
		ConfigPath: path,
		BaseDir:    baseDir,
		Store:      store,
		Logger:     log,
	}, nil
}
