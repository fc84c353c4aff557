package di

import (
	"sync"

	"n8n-relay-api/src/domain/common"
	"n8n-relay-api/src/domain/downstream"

	triggerUseCase "n8n-relay-api/src/application/usecases/trigger"
	"n8n-relay-api/src/infrastructure/config"
	logger "n8n-relay-api/src/infrastructure/logger"
	n8nClient "n8n-relay-api/src/infrastructure/repository/n8n-client"
	triggerController "n8n-relay-api/src/infrastructure/rest/controllers/trigger"
)

// ApplicationContext holds all application dependencies and services
type ApplicationContext struct {
	Logger            *logger.Logger
	CommonService     common.CommonService
	ConfigResolver    config.Resolver
	DownstreamService downstream.IDownstreamService
	TriggerUseCase    triggerUseCase.ITriggerUseCase
	TriggerController triggerController.ITriggerController
}

var (
	loggerInstance *logger.Logger
	loggerOnce     sync.Once
)

func GetLogger() *logger.Logger {
	loggerOnce.Do(func() {
		loggerInstance, _ = logger.NewLogger()
	})
	return loggerInstance
}

// SetupDependencies creates a new application context with all dependencies
func SetupDependencies(loggerInstance *logger.Logger) (*ApplicationContext, error) {
	commonService := common.NewCommonService()

	// Configuration is resolved per request; the optional YAML file layer is
	// read once here.
	configResolver := config.NewResolver(loggerInstance)

	downstreamService := n8nClient.NewN8NRepository(loggerInstance)

	triggerUC := triggerUseCase.NewTriggerUseCase(
		configResolver,
		downstreamService,
		commonService,
		loggerInstance,
	)

	triggerCtrl := triggerController.NewTriggerController(
		commonService,
		configResolver,
		triggerUC,
		loggerInstance,
	)

	return &ApplicationContext{
		Logger:            loggerInstance,
		CommonService:     commonService,
		ConfigResolver:    configResolver,
		DownstreamService: downstreamService,
		TriggerUseCase:    triggerUC,
		TriggerController: triggerCtrl,
	}, nil
}
