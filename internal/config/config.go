package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Azure    AzureConfig
	Paths    PathConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	IndexTopicName     string
}

type DatabaseConfig struct {
	Connection string
}

// AzureConfig holds the Azure OpenAI deployment settings. The assistant
// runs in fallback mode when Endpoint or APIKey is empty.
type AzureConfig struct {
	Endpoint        string
	APIKey          string
	APIVersion      string
	ChatDeployment  string
	ClassifierModel string
	EmbedDeployment string
}

type PathConfig struct {
	KbDataDir    string
	KbDefaultDir string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			IndexTopicName:     getEnv("INDEX_DOCUMENT_TOPIC_NAME", "INDEX_KB_DOCUMENT"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Azure: AzureConfig{
			Endpoint:        getEnv("AOAI_ENDPOINT", ""),
			APIKey:          getEnv("AOAI_API_KEY", ""),
			APIVersion:      getEnv("AOAI_API_VERSION", "2024-10-21"),
			ChatDeployment:  getEnv("AOAI_DEPLOY_GPT4O", "gpt-4o"),
			ClassifierModel: getEnv("AOAI_DEPLOY_GPT4O_MINI", "gpt-4o-mini"),
			EmbedDeployment: getEnv("AOAI_DEPLOY_EMBED_3_SMALL", "text-embedding-3-small"),
		},
		Paths: PathConfig{
			KbDataDir:    getEnv("KB_DATA_DIR", "kb_data"),
			KbDefaultDir: getEnv("KB_DEFAULT_DIR", "kb_default"),
		},
	}
}

// AzureAvailable reports whether the generative backend is configured.
// This is the capability flag that routes between the full pipeline and
// the deterministic fallback pipeline; it is read once at startup and
// never surfaced to end users as an error.
func (c *Config) AzureAvailable() bool {
	return c.Azure.Endpoint != "" && c.Azure.APIKey != ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
