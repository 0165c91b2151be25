package log

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// global accessible logger
var (
	LogV2 *StructuredLogger
)

// This init function is only for testing cases, where the entry point is not
// main function. Unit test will fail with nil pointer dereference if we don't
// init here.
func init() {
	initLogger()
}

type StructuredLogger struct {
	*logrus.Logger
}

func (l *StructuredLogger) Infof(params ...interface{}) {
	l.Info(joinParams(params))
}

func (l *StructuredLogger) Debugf(params ...interface{}) {
	l.Debug(joinParams(params))
}

func (l *StructuredLogger) Errorf(params ...interface{}) {
	l.Error(joinParams(params))
}

func joinParams(params []interface{}) string {
	strs := make([]string, len(params))
	for i, param := range params {
		strs[i] = fmt.Sprint(param)
	}
	return strings.Join(strs, ", ")
}

func initLogger() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level := logrus.InfoLevel
	if parsed, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		level = parsed
	}
	logger.SetLevel(level)

	LogV2 = &StructuredLogger{logger}
}
