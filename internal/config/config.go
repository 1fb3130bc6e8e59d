package config

import (
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"log"
	"sync"
)

const (
	WebhookModeCompletion = "completion"
	WebhookModePlain      = "plain"

	WebhookReplyGenerated = "generated"
	WebhookReplyStatic    = "static"
)

type Config struct {
	Env    string `yaml:"env" env:"ENV" env-default:"local"`
	Debug  bool   `yaml:"debug" env:"DEBUG" env-default:"false"`
	Listen struct {
		BindIP string `yaml:"bind_ip" env:"HOST" env-default:"0.0.0.0"`
		Port   string `yaml:"port" env:"PORT" env-default:"8000"`
	} `yaml:"listen"`
	Log struct {
		Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
		Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
	} `yaml:"log"`
	AllowedHosts []string `yaml:"allowed_hosts" env:"ALLOWED_HOSTS"`
	Chatwoot     struct {
		WebhookSecret string `yaml:"webhook_secret" env:"CHATWOOT_WEBHOOK_SECRET" env-default:""`
		AccountID     string `yaml:"account_id" env:"CHATWOOT_ACCOUNT_ID" env-default:""`
	} `yaml:"chatwoot"`
	Webhook struct {
		Mode        string `yaml:"mode" env:"WEBHOOK_MODE" env-default:"completion"`
		Reply       string `yaml:"reply" env:"WEBHOOK_REPLY" env-default:"generated"`
		StaticReply string `yaml:"static_reply" env:"WEBHOOK_STATIC_REPLY" env-default:"Thank you for reaching out! A member of our support team will follow up shortly."`
	} `yaml:"webhook"`
	Google struct {
		ProjectID   string `yaml:"project_id" env:"GOOGLE_CLOUD_PROJECT_ID" env-default:""`
		Credentials string `yaml:"credentials" env:"GOOGLE_APPLICATION_CREDENTIALS" env-default:""`
		Location    string `yaml:"location" env:"GOOGLE_CLOUD_LOCATION" env-default:"us-central1"`
	} `yaml:"google"`
	ADK struct {
		Model      string `yaml:"model" env:"ADK_MODEL_NAME" env-default:"mock-adk-model"`
		Endpoint   string `yaml:"endpoint" env:"ADK_ENDPOINT" env-default:""`
		ApiKey     string `yaml:"api_key" env:"ADK_API_KEY" env-default:""`
		TimeoutSec int    `yaml:"timeout" env:"ADK_TIMEOUT" env-default:"30"`
	} `yaml:"adk"`
	Telegram struct {
		Enabled bool   `yaml:"enabled" env:"TELEGRAM_ENABLED" env-default:"false"`
		ApiKey  string `yaml:"api_key" env:"TELEGRAM_API_KEY" env-default:""`
		AdminId int64  `yaml:"admin_id" env:"TELEGRAM_ADMIN_ID" env-default:"0"`
		BotName string `yaml:"bot_name" env:"TELEGRAM_BOT_NAME" env-default:"SupportSquadBot"`
	} `yaml:"telegram"`
	Mongo struct {
		Enabled  bool   `yaml:"enabled" env:"MONGO_ENABLED" env-default:"false"`
		Host     string `yaml:"host" env:"MONGO_HOST" env-default:"127.0.0.1"`
		Port     string `yaml:"port" env:"MONGO_PORT" env-default:"27017"`
		User     string `yaml:"user" env:"MONGO_USER" env-default:""`
		Password string `yaml:"password" env:"MONGO_PASSWORD" env-default:""`
		Database string `yaml:"database" env:"MONGO_DATABASE" env-default:"support-squad"`
	} `yaml:"mongo"`
}

var instance *Config
var once sync.Once

func MustLoad(path string) *Config {
	var err error
	once.Do(func() {
		instance = &Config{}
		if err = cleanenv.ReadConfig(path, instance); err != nil {
			desc, _ := cleanenv.GetDescription(instance, nil)
			err = fmt.Errorf("%s; %s", err, desc)
			instance = nil
			log.Fatal(err)
		}
	})
	return instance
}
