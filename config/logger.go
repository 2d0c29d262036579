package config

import "go.uber.org/zap"

// Log is the application logger. Controllers use it for persistence
// failures with operation context; gorm keeps its own SQL logger.
var Log = zap.NewNop()

func InitLogger() {
	l, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	Log = l
}
