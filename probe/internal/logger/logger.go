package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var L = zerolog.Nop()

// Init points L at a console writer on stdout, or on path when set.
// An empty or unknown level falls back to info.
func Init(path, level string) error {
	var w io.Writer = os.Stdout
	if path != "" {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		w = file
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	L = log.Output(zerolog.ConsoleWriter{Out: w, NoColor: path != ""}).Level(lvl)
	return nil
}

func Info(v ...interface{})             { L.Info().Msg(fmt.Sprint(v...)) }
func Error(v ...interface{})            { L.Error().Msg(fmt.Sprint(v...)) }
func Infof(f string, v ...interface{})  { L.Info().Msgf(f, v...) }
func Errorf(f string, v ...interface{}) { L.Error().Msgf(f, v...) }
