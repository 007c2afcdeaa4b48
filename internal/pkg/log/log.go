// Package log add logging utilities.
package log

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/asmtilde/gurted/internal/pkg/message"
)

// SetLogger sets the default logger's level.
func SetLogger(level string) {
	logrus.SetLevel(logrus.ErrorLevel)
	customFormatter := new(logrus.TextFormatter)
	customFormatter.TimestampFormat = time.RFC3339
	logrus.SetFormatter(customFormatter)
	customFormatter.FullTimestamp = true
	switch strings.ToLower(level) {
	case "trace":
		logrus.SetLevel(logrus.TraceLevel)
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.ErrorLevel)
	}
}

// RequestToFields extracts log fields from a request.
func RequestToFields(req *message.Request) logrus.Fields {
	return logrus.Fields{
		"method":     req.Method.String(),
		"path":       req.Path,
		"version":    req.Version,
		"body_bytes": len(req.Body),
	}
}

// ResponseToFields extracts log fields from a response.
func ResponseToFields(resp *message.Response) logrus.Fields {
	return logrus.Fields{
		"status":     int(resp.Status),
		"message":    resp.StatusMessage,
		"version":    resp.Version,
		"body_bytes": len(resp.Body),
	}
}
