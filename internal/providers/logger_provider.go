package providers

import (
	"os"
	"path/filepath"
	"solobill/internal/structures"

	"github.com/rs/zerolog"
)

type TypeEnum int8

const (
	TypeApp TypeEnum = iota
	TypeStore
	TypeBackup
	TypeCli
)

type Logger interface {
	Errorf(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Debugf(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	Close()
}

type LogProvider struct {
	loggers map[TypeEnum]zerolog.Logger
	files   []*os.File
}

var logFileNames = map[TypeEnum]string{
	TypeApp:    "app.log",
	TypeStore:  "store.log",
	TypeBackup: "backup.log",
	TypeCli:    "cli.log",
}

func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, err
	}

	p := &LogProvider{loggers: make(map[TypeEnum]zerolog.Logger, len(logFileNames))}
	for t, name := range logFileNames {
		file, err := os.OpenFile(
			filepath.Join(conf.Logger.Dir, name),
			os.O_CREATE|os.O_WRONLY|os.O_APPEND,
			os.FileMode(conf.Logger.Mode),
		)
		if err != nil {
			p.Close()
			return nil, err
		}
		p.files = append(p.files, file)

		var w zerolog.LevelWriter = zerolog.MultiLevelWriter(file)
		if conf.Debug {
			w = zerolog.MultiLevelWriter(file, zerolog.ConsoleWriter{Out: os.Stderr})
		}
		p.loggers[t] = zerolog.New(w).Level(level).With().Timestamp().Logger()
	}
	return p, nil
}

func (p *LogProvider) logger(t TypeEnum) zerolog.Logger {
	if l, ok := p.loggers[t]; ok {
		return l
	}
	return p.loggers[TypeApp]
}

func (p *LogProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	l := p.logger(t)
	l.Error().Msgf(format, args...)
}

func (p *LogProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	l := p.logger(t)
	l.Warn().Msgf(format, args...)
}

func (p *LogProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	l := p.logger(t)
	l.Info().Msgf(format, args...)
}

func (p *LogProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	l := p.logger(t)
	l.Debug().Msgf(format, args...)
}

func (p *LogProvider) Fatalf(t TypeEnum, format string, args ...interface{}) {
	l := p.logger(t)
	l.Fatal().Msgf(format, args...)
}

func (p *LogProvider) Close() {
	for _, f := range p.files {
		_ = f.Close()
	}
}
