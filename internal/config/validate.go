package config

import "fmt"

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateRename(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateRename() error {
	switch c.Rename.DefaultStrategy {
	case "overwrite", "skip", "suffix":
	default:
		return fmt.Errorf("rename.default_strategy: unknown strategy %q (expected overwrite, skip, or suffix)", c.Rename.DefaultStrategy)
	}
	if c.Rename.TempExtension == "." {
		return fmt.Errorf("rename.temp_extension: extension must not be empty")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (expected console or json)", c.Logging.Format)
	}
	return nil
}
