package initializers

import (
	"jobboard-backend/config"
	"jobboard-backend/db"
	candidatestore "jobboard-backend/lib/candidate/store"
	jobstore "jobboard-backend/lib/job/store"

	log "github.com/sirupsen/logrus"
)

func InitDBConnection() {
	err := db.Connect(config.Conf.Database.Host, config.Conf.Database.Port, config.Conf.Database.Name,
		config.Conf.Database.User, config.Conf.Database.Password, *config.Conf.Database.DebugMode, *config.Conf.Database.MigrateOnStart)
	if err != nil {
		panic(err.Error())
	}
}

// initStores picks the storage driver, the json files are used unless postgres is configured
func initStores() (candidatestore.Provider, jobstore.Provider) {
	switch config.Conf.Storage.Driver {
	case config.StorageDriverPostgres:
		InitDBConnection()
		log.Info("postgres storage selected")
		return candidatestore.NewInstance(db.DB), jobstore.NewInstance(db.DB)
	case config.StorageDriverFile, "":
		log.WithField("applications_path", config.Conf.Storage.ApplicationsPath).
			WithField("jobs_path", config.Conf.Storage.JobsPath).
			Info("file storage selected")
		return candidatestore.NewFileInstance(config.Conf.Storage.ApplicationsPath),
			jobstore.NewFileInstance(config.Conf.Storage.JobsPath)
	}
	panic("unknown storage driver: " + config.Conf.Storage.Driver)
}
