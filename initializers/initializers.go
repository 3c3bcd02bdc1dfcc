package initializers

import (
	"context"
	"jobboard-backend/config"
	"jobboard-backend/fiberlog"
	candidatehandler "jobboard-backend/lib/candidate"
	orderauditworker "jobboard-backend/lib/candidate/order-audit-worker"
	xlsexport "jobboard-backend/lib/export/xls"
	jobhandler "jobboard-backend/lib/job"
	"jobboard-backend/lib/utils/helpers"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	candidateStore, jobStore := initStores()
	InitS3(ctx)
	InitSmtp()
	InitRedis(ctx)
	xlsexport.NewHandler()
	jobhandler.NewHandler(jobStore)
	candidatehandler.NewHandler(candidateStore, jobStore, helpers.Seconds(config.Conf.Storage.LockWaitInSec))
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	orderauditworker.StartWorker(ctx, helpers.Seconds(config.Conf.Workers.OrderAuditIntervalSec))
}
