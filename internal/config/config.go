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
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Dataset      Dataset      `mapstructure:",squash"`
	Analytics    Analytics    `mapstructure:",squash"`
	SnapshotSync SnapshotSync `mapstructure:",squash"`
	SecretKey    string       `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Dataset configura o carregamento da planilha de exemplo
type Dataset struct {
	SamplePath     string `mapstructure:"sample_dataset_path"`
	SampleName     string `mapstructure:"sample_dataset_name"`
	MaxUploadBytes int64  `mapstructure:"dataset_max_upload_bytes"`
	MaxUploadsKept int    `mapstructure:"dataset_max_uploads_kept"`
}

// Analytics parametriza os agregadores das páginas
type Analytics struct {
	TopKCategories   int    `mapstructure:"top_k_categories"`
	CurrencyRounding bool   `mapstructure:"currency_rounding"`
	ItemsSoldMode    string `mapstructure:"items_sold_mode"`
}

// SnapshotSync configura o agendador de persistência diária das métricas
type SnapshotSync struct {
	CronSchedule string `mapstructure:"snapshot_sync_cron"`
	Enabled      bool   `mapstructure:"snapshot_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/retail_analytics?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SAMPLE_DATASET_PATH", "data/items_sold_sample.xlsx")
	viper.SetDefault("SAMPLE_DATASET_NAME", "Exportação de exemplo")
	viper.SetDefault("DATASET_MAX_UPLOAD_BYTES", 10<<20) // 10 MiB por upload
	viper.SetDefault("DATASET_MAX_UPLOADS_KEPT", 20)

	viper.SetDefault("TOP_K_CATEGORIES", 10)
	viper.SetDefault("CURRENCY_ROUNDING", true)
	viper.SetDefault("ITEMS_SOLD_MODE", "rows")

	viper.SetDefault("SNAPSHOT_SYNC_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("SNAPSHOT_SYNC_ENABLED", false)

	viper.SetDefault("SECRET_KEY", "your_secret_key")

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
		filepath.Join(cwd, "../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
