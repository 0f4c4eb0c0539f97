package main

import (
	stdLog "log"
	"os"
	"time"

	"github.com/Astemirdum/car-rental-storefront/storefront/app"
	"github.com/Astemirdum/car-rental-storefront/storefront/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLog.Fatal("load envs from .env ", err)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.InfoLevel),
		config.WithWriteTimeout(time.Minute),
	)

	app.Run(cfg)
}
