package utils

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger is shared by every package; InitLogger configures it once at start.
var Logger = logrus.New()

// serviceHook stamps every entry with the emitting service.
type serviceHook string

func (serviceHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h serviceHook) Fire(entry *logrus.Entry) error {
	if _, ok := entry.Data["service"]; !ok {
		entry.Data["service"] = string(h)
	}
	return nil
}

// InitLogger reads LOG_LEVEL (default info) and LOG_FORMAT ("json" or text).
func InitLogger(service string) {
	Logger.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(strings.ToLower(os.Getenv("LOG_LEVEL")))
	if err != nil {
		level = logrus.InfoLevel
	}
	Logger.SetLevel(level)

	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	Logger.ReplaceHooks(logrus.LevelHooks{})
	Logger.AddHook(serviceHook(service))
}
