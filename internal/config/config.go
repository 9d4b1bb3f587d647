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
	App                     App                     `mapstructure:",squash"`
	Server                  Server                  `mapstructure:",squash"`
	Database                Database                `mapstructure:",squash"`
	Attribution             Attribution             `mapstructure:",squash"`
	AttributionSnapshotSync AttributionSnapshotSync `mapstructure:",squash"`
	SecretKey               string                  `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN  string `mapstructure:"-"`
	Path string `mapstructure:"database_path"`
}

type Attribution struct {
	// HalfLifeDays é a meia-vida padrão do modelo time decay
	HalfLifeDays float64 `mapstructure:"attribution_half_life_days"`
}

type AttributionSnapshotSync struct {
	CronSchedule  string  `mapstructure:"attribution_snapshot_cron"`
	Enabled       bool    `mapstructure:"attribution_snapshot_enabled"`
	HalfLifeDays  float64 `mapstructure:"attribution_snapshot_half_life_days"`
	RetentionDays int     `mapstructure:"attribution_snapshot_retention_days"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_PATH", "data/attribution.db")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("ATTRIBUTION_HALF_LIFE_DAYS", 7.0)

	// Defaults do snapshot diário de atribuição
	viper.SetDefault("ATTRIBUTION_SNAPSHOT_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("ATTRIBUTION_SNAPSHOT_ENABLED", false)
	viper.SetDefault("ATTRIBUTION_SNAPSHOT_HALF_LIFE_DAYS", 7.0)
	viper.SetDefault("ATTRIBUTION_SNAPSHOT_RETENTION_DAYS", 90)

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

	config.Database.DSN = BuildDSN(config.Database.Path)

	return config, nil
}

// BuildDSN monta a string de conexão do SQLite. Bancos em memória são
// usados como estão; bancos em arquivo ganham timeout de lock e WAL.
func BuildDSN(path string) string {
	if path == ":memory:" || path == "" {
		return ":memory:"
	}
	return fmt.Sprintf("file:%s?_busy_timeout=30000&_journal_mode=WAL", path)
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
		filepath.Join(cwd, "../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
