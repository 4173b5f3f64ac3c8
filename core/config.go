package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppName string
	Env     string // DEV (local; default), TEST, QA, PROD
	Build   string
	Debug   bool

	// DataFile is the path of the gradebook document.
	DataFile string
	// AutoSync persists every mutation immediately. When false, callers flush with Sync.
	AutoSync     bool
	HistoryLimit int

	RollbarToken string
}

func (c *Config) TestMode() bool { return c.Env == "TEST" }

// NewConfig loads the configuration from the environment.
// Variables are prefixed with GRADEBOOK_ (eg. GRADEBOOK_DATAFILE) and may also come from config/.env.<env>.
func NewConfig() *Config {
	conf := viper.New()

	env := strings.ToUpper(CleanString(os.Getenv("ENV")))
	if env == "" {
		env = "DEV"
	}

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("appName", "Gradebook")
	conf.SetDefault("build", "dev")
	conf.SetDefault("debug", env == "DEV" || env == "TEST")
	conf.SetDefault("dataFile", "data.json")
	conf.SetDefault("autoSync", true)
	conf.SetDefault("historyLimit", 20)
	conf.SetDefault("rollbarToken", "")

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}

	conf.SetEnvPrefix("gradebook")
	conf.AutomaticEnv()

	return &Config{
		AppName:      conf.GetString("appName"),
		Env:          env,
		Build:        conf.GetString("build"),
		Debug:        conf.GetBool("debug"),
		DataFile:     conf.GetString("dataFile"),
		AutoSync:     conf.GetBool("autoSync"),
		HistoryLimit: conf.GetInt("historyLimit"),
		RollbarToken: conf.GetString("rollbarToken"),
	}
}
