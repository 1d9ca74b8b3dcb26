package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeImageMagick(); err != nil {
		return err
	}
	c.normalizeImage()
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeImageMagick() error {
	if value, ok := os.LookupEnv("IMAGEMAGICK_PATH"); ok && strings.TrimSpace(value) != "" {
		c.ImageMagick.Path = value
	}
	c.ImageMagick.Path = strings.TrimSpace(c.ImageMagick.Path)
	if c.ImageMagick.Path != "" {
		var err error
		if c.ImageMagick.Path, err = expandPath(c.ImageMagick.Path); err != nil {
			return fmt.Errorf("imagemagick.path: %w", err)
		}
	}
	c.ImageMagick.IdentifyBinary = strings.TrimSpace(c.ImageMagick.IdentifyBinary)
	if c.ImageMagick.IdentifyBinary == "" {
		c.ImageMagick.IdentifyBinary = defaultIdentifyBinary
	}
	c.ImageMagick.ConvertBinary = strings.TrimSpace(c.ImageMagick.ConvertBinary)
	if c.ImageMagick.ConvertBinary == "" {
		c.ImageMagick.ConvertBinary = defaultConvertBinary
	}
	return nil
}

func (c *Config) normalizeImage() {
	c.Image.ScaleMethod = strings.ToLower(strings.TrimSpace(c.Image.ScaleMethod))
	if c.Image.ScaleMethod == "" {
		c.Image.ScaleMethod = defaultScaleMethod
	}
	if c.Image.Quality == 0 {
		c.Image.Quality = defaultQuality
	}
}

func (c *Config) normalizePaths() error {
	var err error
	if value, ok := os.LookupEnv("IMAGESTAGE_TEMP_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Paths.TempDir = value
	}
	if strings.TrimSpace(c.Paths.TempDir) == "" {
		c.Paths.TempDir = os.TempDir()
	}
	if c.Paths.TempDir, err = expandPath(c.Paths.TempDir); err != nil {
		return fmt.Errorf("paths.temp_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
