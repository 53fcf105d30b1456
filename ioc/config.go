package ioc

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingConfig = errors.New("missing required configuration")

type Config struct {
	Cex struct {
		Binance BinanceConfig `mapstructure:"binance"`
	} `mapstructure:"cex"`
	Notify struct {
		Telegram TelegramConfig `mapstructure:"telegram"`
		Slack    SlackConfig    `mapstructure:"slack"`
	} `mapstructure:"notify"`
	Llm struct {
		Gemini GeminiConfig `mapstructure:"gemini"`
	} `mapstructure:"llm"`
	Storage struct {
		Sqlite SqliteConfig `mapstructure:"sqlite"`
	} `mapstructure:"storage"`
	Monitor MonitorConfig `mapstructure:"monitor"`
	Log     struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

type BinanceConfig struct {
	ApiKey    string `mapstructure:"api_key"`
	ApiSecret string `mapstructure:"api_secret"`
}

type TelegramConfig struct {
	BotToken    string `mapstructure:"bot_token"`
	ChatId      int64  `mapstructure:"chat_id"`
	ApiEndpoint string `mapstructure:"api_endpoint"`
}

type SlackConfig struct {
	BotToken  string `mapstructure:"bot_token"`
	ChannelId string `mapstructure:"channel_id"`
}

type GeminiConfig struct {
	ApiKey []string `mapstructure:"api_key"`
	Model  string   `mapstructure:"model"`
}

type SqliteConfig struct {
	Dsn string `mapstructure:"dsn"`
}

type MonitorConfig struct {
	Quote         string        `mapstructure:"quote"`
	Interval      string        `mapstructure:"interval"`
	Lookback      string        `mapstructure:"lookback"`
	PollInterval  time.Duration `mapstructure:"poll_interval"`
	Sigma         float64       `mapstructure:"sigma"`
	ThresholdUnit string        `mapstructure:"threshold_unit"`
	IgnoreBase    []string      `mapstructure:"ignore_base"`
}

// envBindings viper key -> 环境变量
var envBindings = map[string]string{
	"cex.binance.api_key":       "BINANCE_API_KEY",
	"cex.binance.api_secret":    "BINANCE_API_SECRET",
	"notify.telegram.bot_token": "TELEGRAM_BOT_TOKEN",
	"notify.telegram.chat_id":   "TELEGRAM_CHAT_ID",
	"notify.slack.bot_token":    "SLACK_BOT_TOKEN",
	"notify.slack.channel_id":   "SLACK_CHANNEL_ID",
	"llm.gemini.api_key":        "GEMINI_API_KEY",
	"llm.gemini.model":          "GEMINI_MODEL",
	"storage.sqlite.dsn":        "SURGE_JOURNAL_DSN",
	"log.level":                 "LOG_LEVEL",
}

// 必填项, 按提示顺序排列
var requiredKeys = []string{
	"cex.binance.api_key",
	"cex.binance.api_secret",
	"notify.telegram.bot_token",
	"notify.telegram.chat_id",
}

func setDefaults() {
	viper.SetDefault("monitor.quote", "USDT")
	viper.SetDefault("monitor.interval", "1h")
	viper.SetDefault("monitor.lookback", "7 days ago UTC")
	viper.SetDefault("monitor.poll_interval", "1h")
	viper.SetDefault("monitor.sigma", 2.0)
	viper.SetDefault("monitor.threshold_unit", "fraction")
	viper.SetDefault("monitor.ignore_base", []string{})
	viper.SetDefault("log.level", "info")
}

// InitViper loads .env (if any), binds the environment, reads the optional
// config file and validates the credentials. Environment values win over the file.
func InitViper(file string) (Config, error) {
	// .env 可选, 存在但格式错误时报错
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	setDefaults()
	for key, env := range envBindings {
		if err := viper.BindEnv(key, env); err != nil {
			return Config{}, err
		}
	}

	if file != "" {
		viper.SetConfigFile(file)
		if err := viper.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", file, err)
		}
	}

	if err := checkRequired(); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

func checkRequired() error {
	var missing []string
	for _, key := range requiredKeys {
		if strings.TrimSpace(viper.GetString(key)) == "" {
			missing = append(missing, envBindings[key])
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingConfig, strings.Join(missing, ", "))
	}

	if _, err := strconv.ParseInt(strings.TrimSpace(viper.GetString("notify.telegram.chat_id")), 10, 64); err != nil {
		return fmt.Errorf("TELEGRAM_CHAT_ID must be an integer: %w", err)
	}
	return nil
}
