package logger

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

var (
	base *zap.Logger
	once sync.Once

	serviceName = "default"
)

func SetServiceName(newName string) string {
	oldName := serviceName
	serviceName = newName

	return oldName
}

// Init builds the process-wide zap logger. Callers that skip it (tests) get a
// lazily built production logger on first use.
func Init(service string) {
	SetServiceName(service)
	l, err := zap.NewProduction(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	base = l
}

func get() *zap.Logger {
	once.Do(func() {
		if base == nil {
			l, err := zap.NewProduction(zap.AddCallerSkip(1))
			if err != nil {
				panic(err)
			}
			base = l
		}
	})
	return base
}

func Info(format string, args ...interface{}) {
	get().With(zap.String("service", serviceName)).Info(fmt.Sprintf(format, args...))
}

func Warn(format string, args ...interface{}) {
	get().With(zap.String("service", serviceName)).Warn(fmt.Sprintf(format, args...))
}

func Error(format string, args ...interface{}) {
	get().With(zap.String("service", serviceName)).Error(fmt.Sprintf(format, args...))
}

func Fatal(format string, args ...interface{}) {
	get().With(zap.String("service", serviceName)).Fatal(fmt.Sprintf(format, args...))
}
