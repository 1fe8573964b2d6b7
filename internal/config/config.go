package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Ingestion     Ingestion     `mapstructure:",squash"`
	IngestionSync IngestionSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN              string `mapstructure:"-"`
	Driver           string `mapstructure:"database_driver"`
	Password         string `mapstructure:"database_password"`
	URL              string `mapstructure:"database_url"`
	User             string `mapstructure:"database_user"`
	MaxOpenConns     int    `mapstructure:"database_max_open_conns"`
	MaxIdleConns     int    `mapstructure:"database_max_idle_conns"`
	MigrateOnStartup bool   `mapstructure:"database_migrate_on_startup"`
}

type Ingestion struct {
	DataDir   string `mapstructure:"ingest_data_dir"`
	BatchSize int    `mapstructure:"ingest_batch_size"`
	// AbortOnBatchError interrompe a rodada inteira na primeira falha de lote;
	// desligado, a falha encerra só o arquivo corrente e a rodada segue
	AbortOnBatchError bool `mapstructure:"ingest_abort_on_batch_error"`
}

type IngestionSync struct {
	CronSchedule string `mapstructure:"ingestion_sync_cron"`
	Enabled      bool   `mapstructure:"ingestion_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/analytics?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_MIGRATE_ON_STARTUP", false)

	viper.SetDefault("INGEST_DATA_DIR", "data")
	viper.SetDefault("INGEST_BATCH_SIZE", 1000)
	viper.SetDefault("INGEST_ABORT_ON_BATCH_ERROR", false)

	viper.SetDefault("INGESTION_SYNC_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("INGESTION_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}
}
