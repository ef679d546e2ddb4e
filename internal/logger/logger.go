// Package logger configures the process-wide structured logger.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New creates a configured logrus logger: human-readable text in development,
// JSON everywhere else.
func New(appName, env string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	if env == "development" {
		log.SetLevel(logrus.DebugLevel)
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetLevel(logrus.InfoLevel)
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	log.WithFields(logrus.Fields{"app": appName, "env": env}).Info("logger initialized")
	return log
}
