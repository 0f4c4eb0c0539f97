package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/car-rental-storefront/pkg/circuit_breaker"
	"github.com/Astemirdum/car-rental-storefront/pkg/kafka"
	"github.com/Astemirdum/car-rental-storefront/pkg/kvstore"
	"github.com/Astemirdum/car-rental-storefront/pkg/logger"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"STOREFRONT_HTTP_HOST" default:"localhost"`
	Port         string        `yaml:"port" envconfig:"STOREFRONT_HTTP_PORT" default:"3000"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"30s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE"`
}

// Backend is the remote rental API.
type Backend struct {
	BaseURL string `envconfig:"API_URL" default:"http://localhost:8000"`
	// Timeout of zero leaves requests bounded only by the caller's context.
	Timeout time.Duration `envconfig:"BACKEND_HTTP_TIMEOUT" default:"0s"`
	CB      circuit_breaker.Config
}

type Config struct {
	Server  HTTPServer `yaml:"server"`
	Backend Backend
	Store   kvstore.Config
	Kafka   kafka.Config
	Log     logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg Config) {
	cfg.Store.Redis.Password = "***"
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
