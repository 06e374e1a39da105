package famicore

import (
	logrus "gopkg.in/Sirupsen/logrus.v0"
)

type logrusFields = logrus.Fields

// Per-subsystem loggers. Hot paths (CPU step, PPU tick, APU tick) never log
// above debug level.
var (
	logCPU    = logrus.WithField("mod", "cpu")
	logPPU    = logrus.WithField("mod", "ppu")
	logAPU    = logrus.WithField("mod", "apu")
	logMapper = logrus.WithField("mod", "mapper")
	logLoader = logrus.WithField("mod", "loader")
)

// SetLogLevel adjusts the global logging threshold. The frontend maps its
// --log flag onto this.
func SetLogLevel(level logrus.Level) {
	logrus.SetLevel(level)
}
