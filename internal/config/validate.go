package config

import (
	"errors"
	"fmt"
	"os"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateImageMagick(); err != nil {
		return err
	}
	if err := c.validateImage(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateImageMagick() error {
	if c.ImageMagick.ToolTimeoutSeconds < 0 {
		return errors.New("imagemagick.tool_timeout_seconds must not be negative")
	}
	if c.ImageMagick.Path == "" {
		return nil
	}
	info, err := os.Stat(c.ImageMagick.Path)
	if err != nil {
		return fmt.Errorf("imagemagick.path: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("imagemagick.path %q must be a directory", c.ImageMagick.Path)
	}
	return nil
}

func (c *Config) validateImage() error {
	if c.Image.Quality < 1 || c.Image.Quality > 100 {
		return errors.New("image.quality must be between 1 and 100")
	}
	for _, r := range c.Image.ScaleMethod {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return fmt.Errorf("image.scale_method: unsupported value %q", c.Image.ScaleMethod)
		}
	}
	for key, color := range map[string][]int{
		"image.canvas_color": c.Image.CanvasColor,
		"image.pencil_color": c.Image.PencilColor,
		"image.text_color":   c.Image.TextColor,
	} {
		if err := validateColor(key, color); err != nil {
			return err
		}
	}
	return nil
}

func validateColor(key string, color []int) error {
	if len(color) != 3 {
		return fmt.Errorf("%s must have exactly three components", key)
	}
	for _, component := range color {
		if component < 0 || component > 255 {
			return fmt.Errorf("%s components must be between 0 and 255", key)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json", "auto":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
}
