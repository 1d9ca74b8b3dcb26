package config

const (
	defaultConfigPath     = "~/.config/imagestage/config.toml"
	defaultLogDir         = "~/.local/share/imagestage/logs"
	defaultIdentifyBinary = "identify"
	defaultConvertBinary  = "convert"
	defaultQuality        = 90
	defaultScaleMethod    = "smooth"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		ImageMagick: ImageMagick{
			IdentifyBinary: defaultIdentifyBinary,
			ConvertBinary:  defaultConvertBinary,
		},
		Image: Image{
			Quality:     defaultQuality,
			ScaleMethod: defaultScaleMethod,
			CanvasColor: []int{255, 255, 255},
			PencilColor: []int{0, 0, 0},
			TextColor:   []int{0, 0, 0},
		},
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
