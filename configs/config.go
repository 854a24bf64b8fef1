package configs

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver       string
	DBSource       string
	Port           string
	JWTSecret      string
	JWTTTL         time.Duration
	AdminEmail     string
	AdminPassword  string
	UploadDir      string
	TrustTokenRole bool
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	cfg := &Config{
		DBDriver:       getEnv("DB_DRIVER", "sqlite"),
		DBSource:       getEnv("DB_SOURCE", "civic.db"),
		Port:           getEnv("PORT", "8000"),
		JWTSecret:      getEnv("SECRET_KEY", "a_default_secret_key_for_local_dev"),
		JWTTTL:         60 * time.Minute,
		AdminEmail:     getEnv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword:  getEnv("ADMIN_PASSWORD", "DefaultAdminPass123!"),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		TrustTokenRole: getEnv("AUTH_TRUST_TOKEN_ROLE", "") == "true",
	}

	// Railway-style deployments hand out the connection parts separately.
	if cfg.DBDriver == "postgres" {
		cfg.DBSource = fmt.Sprintf("postgresql://%s:%s@%s:%s/%s",
			os.Getenv("PGUSER"), os.Getenv("PGPASSWORD"),
			os.Getenv("PGHOST"), os.Getenv("PGPORT"), os.Getenv("PGDATABASE"))
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
