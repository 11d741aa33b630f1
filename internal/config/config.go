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
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Gemini    Gemini    `mapstructure:",squash"`
	IBGE      IBGE      `mapstructure:",squash"`
	Auth      Auth      `mapstructure:",squash"`
	ChatSweep ChatSweep `mapstructure:",squash"`
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

// Gemini configura o oráculo generativo. O modelo de prospecção é separado
// porque o grounding com Google Maps exige a série gemini-2.5.
type Gemini struct {
	APIKey          string `mapstructure:"gemini_api_key"`
	Model           string `mapstructure:"gemini_model"`
	LeadModel       string `mapstructure:"gemini_lead_model"`
	MaxOutputTokens int32  `mapstructure:"gemini_max_output_tokens"`
}

type IBGE struct {
	URL string `mapstructure:"ibge_url"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// ChatSweep configura a varredura periódica de sessões de chat ociosas.
type ChatSweep struct {
	CronSchedule   string `mapstructure:"chat_sweep_cron"`
	MaxIdleMinutes int    `mapstructure:"chat_sweep_max_idle_minutes"`
	Enabled        bool   `mapstructure:"chat_sweep_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-3-flash-preview")
	viper.SetDefault("GEMINI_LEAD_MODEL", "gemini-2.5-flash")
	viper.SetDefault("GEMINI_MAX_OUTPUT_TOKENS", 4000)

	viper.SetDefault("IBGE_URL", "https://servicodados.ibge.gov.br/api/v1/localidades")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Defaults para a varredura de sessões de chat
	viper.SetDefault("CHAT_SWEEP_CRON", "0 * * * *") // A cada hora cheia
	viper.SetDefault("CHAT_SWEEP_MAX_IDLE_MINUTES", 120)
	viper.SetDefault("CHAT_SWEEP_ENABLED", true)

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

	// A ausência da credencial do banco degrada as consultas para resultados
	// vazios em vez de impedir o startup, então o DSN só é montado se houver URL.
	if config.Database.URL != "" {
		config.Database.DSN = fmt.Sprintf(
			"%s://%s:%s@%s",
			config.Database.Driver,
			config.Database.User,
			config.Database.Password,
			config.Database.URL,
		)
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
