package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

const (
	StorageDriverFile     = "file"
	StorageDriverPostgres = "postgres"
)

type Configuration struct {
	App struct {
		ListenAddr    string `default:"" env:"APP_HOST"`
		Port          int    `default:"8080"  env:"APP_PORT"`
		SwaggerEnable *bool  `default:"true" env:"APP_SWAGGER_ENABLE"`
		SwaggerFile   string `default:"./docs/swagger.json" env:"APP_SWAGGER_FILE"`
	}
	Auth struct {
		JWTSecret      string `default:"" env:"JWT_SECRET"`
		JWTExpireInSec int64  `default:"86400" env:"JWT_EXPIRE_IN_SEC"`
	}
	Storage struct {
		Driver           string `default:"file" env:"STORAGE_DRIVER"` // file/postgres
		ApplicationsPath string `default:"data/applications.json" env:"STORAGE_APPLICATIONS_PATH"`
		JobsPath         string `default:"data/jobs.json" env:"STORAGE_JOBS_PATH"`
		LockWaitInSec    int    `default:"5" env:"STORAGE_LOCK_WAIT_IN_SEC"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"job-board" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	S3 struct {
		Endpoint        string `default:"" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
		BucketName      string `default:"job-board" env:"S3_BUCKET_NAME"`
		PublicUrl       string `default:"" env:"S3_PUBLIC_URL"`
		PhotoMaxSize    int64  `default:"5242880" env:"S3_PHOTO_MAX_SIZE"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		Sender     string `default:"no-reply@job-board.local" env:"SMTP_SENDER"`
	}
	Redis struct {
		Addr           string `default:"" env:"REDIS_ADDR"`
		Password       string `default:"" env:"REDIS_PASSWORD"`
		DB             int    `default:"0" env:"REDIS_DB"`
		ApplyLimit     int    `default:"10" env:"REDIS_APPLY_LIMIT"`
		ApplyWindowSec int    `default:"60" env:"REDIS_APPLY_WINDOW_SEC"`
	}
	Workers struct {
		OrderAuditIntervalSec int `default:"600" env:"WORKER_ORDER_AUDIT_INTERVAL_SEC"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
