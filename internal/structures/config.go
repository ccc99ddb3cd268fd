package structures

type StorageConfig struct {
	Backend  string `yaml:"backend" validate:"required|in:file,sqlite"`
	Dir      string `yaml:"dir" validate:"required"`
	Compress bool   `yaml:"compress"`
	Mode     uint32 `yaml:"mode" validate:"required|uint"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName string
	Debug   bool
	Path    string
	Storage StorageConfig `yaml:"storage"`
	Logger  LoggerConfig  `yaml:"logger"`
	Cache   CacheConfig   `yaml:"cache"`
	Metrics MetricsConfig `yaml:"metrics"`
}

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
}
