package logger

import (
	"os"

	"go.uber.org/zap"
)

// New cria o logger do processo: produção em JSON, desenvolvimento
// legível quando APP_ENV=development.
func New() *zap.Logger {
	var log *zap.Logger
	var err error

	if os.Getenv("APP_ENV") == "development" {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}

	if err != nil {
		panic(err)
	}

	return log
}
