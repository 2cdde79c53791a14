package basicproject

import (
	"sync"

	"github.com/charlieparkes/basicproject/internal/env"
	"go.uber.org/zap"
)

var (
	loggerOnce sync.Once
	defaultLog *zap.Logger
)

func logger() *zap.Logger {
	loggerOnce.Do(func() {
		var err error
		if env.Get().Debug {
			defaultLog, err = zap.NewDevelopment()
		} else {
			defaultLog, err = zap.NewProduction()
		}
		if err != nil {
			panic(err)
		}
	})
	return defaultLog
}
