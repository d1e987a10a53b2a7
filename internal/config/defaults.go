package config

const (
	defaultOutputDir     = "~/soundtrack"
	defaultStateDir      = "~/.local/share/ostforge"
	defaultOutputFormat  = "flac"
	defaultDateTag       = "2024"
	defaultFFmpegBinary  = "ffmpeg"
	defaultFFprobeBinary = "ffprobe"
	defaultWorkers       = 2
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			StateDir:  defaultStateDir,
		},
		Output: Output{
			Format:  defaultOutputFormat,
			DateTag: defaultDateTag,
		},
		Encoder: Encoder{
			FFmpegBinary:  defaultFFmpegBinary,
			FFprobeBinary: defaultFFprobeBinary,
		},
		Workflow: Workflow{
			Workers: defaultWorkers,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
