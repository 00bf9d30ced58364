package config

import (
	"net/http"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logrusInstance *logrus.Logger
	logrusOnce     sync.Once
)

func GetLogrusInstance() *logrus.Logger {
	logrusOnce.Do(func() {
		logrusInstance = logrus.New()
		logrusInstance.SetFormatter(&logrus.JSONFormatter{})
		logrusInstance.SetLevel(GetLogLevel())
	})
	return logrusInstance
}

func GetLogLevel() logrus.Level {
	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// PrintLogInfo records the outcome of a handler call.
func PrintLogInfo(username *string, statusCode int, functionName string) {
	// Handle a nil `username` by using a placeholder
	user := "Unknown"
	if username != nil {
		user = *username
	}

	entry := GetLogrusInstance().WithFields(logrus.Fields{
		"user":     user,
		"function": functionName,
		"status":   statusCode,
	})

	msg := http.StatusText(statusCode)
	switch {
	case statusCode >= http.StatusInternalServerError:
		entry.Error(msg)
	case statusCode >= http.StatusBadRequest:
		entry.Warn(msg)
	default:
		entry.Info(msg)
	}
}
