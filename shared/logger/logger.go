package logger

import (
	"io"
	"os"
	"time"

	"wehouse/config"
	"wehouse/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const defaultLevel = zerolog.InfoLevel

func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(output(os.Getenv("SERVER_ENV")))
	log.Trace().Msg("Zerolog initialized.")
}

// output keeps the human readable console writer everywhere except production,
// where log collectors expect one JSON object per line.
func output(env string) io.Writer {
	if env == constant.ServerEnvProduction {
		return os.Stdout
	}

	return zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(config *config.Config) {
	if config.Server.LogLevel == "" {
		log.Trace().Str("loglevel", defaultLevel.String()).Msg("Environment has no log level set up, using default.")
		zerolog.SetGlobalLevel(defaultLevel)

		return
	}

	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil {
		level = defaultLevel
		log.Warn().Str("loglevel", config.Server.LogLevel).Msg("Unknown log level, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}
