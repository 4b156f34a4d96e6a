// Package logx constructs the application logger.
package logx

import "github.com/sirupsen/logrus"

// NewLogger returns a logrus logger configured for env: human-readable debug
// output in development, JSON at info level otherwise.
func NewLogger(env string) *logrus.Logger {
	logger := logrus.New()

	if env == "development" {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return logger
}
