package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateWorkflow(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.AssetsDir == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/ostforge/config.toml"
		}
		return fmt.Errorf("paths.assets_dir is required. Set OSTFORGE_ASSETS_DIR or edit %s (create with 'ostforge config init')", defaultPath)
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Format {
	case "flac", "wav", "alac":
	default:
		return fmt.Errorf("output.format must be a lossless format (flac, wav, alac), got %q", c.Output.Format)
	}
	return nil
}

func (c *Config) validateWorkflow() error {
	if c.Workflow.Workers > 32 {
		return errors.New("workflow.workers must be 32 or fewer")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
