package main

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/neon-highway/parameter"
)

// setupLogging opens path for appending, rotating it to .old first when above MaxLogSize
// An empty path disables logging; the returned func closes the file
func setupLogging(path string, debug bool) (zerolog.Logger, func(), error) {
	if path == "" {
		return zerolog.Nop(), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nil, errors.Wrap(err, "create log directory")
	}

	if info, err := os.Stat(path); err == nil && info.Size() > parameter.MaxLogSize {
		if err := os.Rename(path, path+".old"); err != nil {
			return zerolog.Nop(), nil, errors.Wrap(err, "rotate log")
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, errors.Wrap(err, "open log")
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(f).Level(level).With().Timestamp().Logger()
	return log, func() { _ = f.Close() }, nil
}
