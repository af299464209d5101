package main

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-server/api"
	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/config"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/operator"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("finance-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage, err := storage.NewStorage(context.Background(), envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	writeOperator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers)
	writeOperator.Start()
	defer writeOperator.Stop()

	svc := service.NewService(dbStorage, writeOperator, envConfig.SavingsPercent)
	issuer := auth.NewIssuer(envConfig.JWTSecret, envConfig.TokenTTL)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.Port,
			Service: svc,
			Storage: dbStorage,
			Issuer:  issuer,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
