package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

type Config struct {
	Env              string
	StrictValidation bool
	Server           server
	Storage          storage
	Upload           upload
	Web              web
	Redis            redis
	Sweeper          sweeper
}

type server struct {
	Port        string   `env:"PORT" envDefault:"4000"`
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"*"`
}

type storage struct {
	PostsFile string `env:"POSTS_FILE"`
	JobsFile  string `env:"JOBS_FILE"`
}

type upload struct {
	Dir        string        `env:"UPLOAD_DIR"`
	Prefix     string        `env:"UPLOAD_PREFIX"`
	Mode       string        `env:"UPLOAD_MODE" envDefault:"images"`
	MaxBytes   int64         `env:"UPLOAD_MAX_BYTES"`
	Extensions []string      `env:"UPLOAD_EXTENSIONS"`
	MediaTypes []string      `env:"UPLOAD_MEDIA_TYPES"`
	Timeout    time.Duration `env:"UPLOAD_TIMEOUT"`
}

type web struct {
	FrontendDir string `env:"FRONTEND_DIR"`
	AdminPage   string `env:"ADMIN_PAGE"`
}

type redis struct {
	URL     string `env:"REDIS_URL"`
	Channel string `env:"REDIS_CHANNEL"`
}

type sweeper struct {
	Schedule string        `env:"SWEEP_SCHEDULE"`
	MaxAge   time.Duration `env:"SWEEP_MAX_AGE"`
}

// MustLoad читает .env (если есть) и переменные окружения.
func MustLoad() *Config {
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			log.Fatalf("failed to load %s: %v", envPath, err)
		}
	} else {
		log.Println("No .env file found, relying on environment variables")
	}

	return Load(viper.New())
}

// Load собирает конфигурацию из переданного экземпляра viper.
func Load(v *viper.Viper) *Config {
	v.AutomaticEnv()

	v.SetDefault("app_env", EnvLocal)
	v.SetDefault("port", "4000")
	v.SetDefault("cors_origins", "*")
	v.SetDefault("posts_file", "data/posts.json")
	v.SetDefault("jobs_file", "data/jobs.json")
	v.SetDefault("upload_dir", "uploads")
	v.SetDefault("upload_prefix", "/uploads")
	v.SetDefault("upload_mode", "images")
	v.SetDefault("upload_timeout", 2*time.Minute)
	v.SetDefault("strict_validation", false)
	v.SetDefault("admin_page", "admin.html")
	v.SetDefault("redis_channel", "sitecms:events")
	v.SetDefault("sweep_schedule", "@every 1h")
	v.SetDefault("sweep_max_age", time.Hour)

	return &Config{
		Env:              v.GetString("app_env"),
		StrictValidation: v.GetBool("strict_validation"),
		Server: server{
			Port:        v.GetString("port"),
			CORSOrigins: splitList(v.GetString("cors_origins")),
		},
		Storage: storage{
			PostsFile: v.GetString("posts_file"),
			JobsFile:  v.GetString("jobs_file"),
		},
		Upload: upload{
			Dir:        v.GetString("upload_dir"),
			Prefix:     v.GetString("upload_prefix"),
			Mode:       v.GetString("upload_mode"),
			MaxBytes:   v.GetInt64("upload_max_bytes"),
			Extensions: splitList(v.GetString("upload_extensions")),
			MediaTypes: splitList(v.GetString("upload_media_types")),
			Timeout:    v.GetDuration("upload_timeout"),
		},
		Web: web{
			FrontendDir: v.GetString("frontend_dir"),
			AdminPage:   v.GetString("admin_page"),
		},
		Redis: redis{
			URL:     v.GetString("redis_url"),
			Channel: v.GetString("redis_channel"),
		},
		Sweeper: sweeper{
			Schedule: v.GetString("sweep_schedule"),
			MaxAge:   v.GetDuration("sweep_max_age"),
		},
	}
}

// Address возвращает адрес для http.Server.
func (c *Config) Address() string {
	return ":" + c.Server.Port
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
