package config

import "os"

const sandboxSnapURL = "https://app.sandbox.midtrans.com/snap/v1/transactions"

type Config struct {
	DatabaseURL       string
	RedisURL          string
	KafkaBrokers      string
	MidtransServerKey string
	MidtransSnapURL   string
	JaegerEndpoint    string
	Port              string
}

func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8084"
	}

	snapURL := os.Getenv("MIDTRANS_SNAP_URL")
	if snapURL == "" {
		snapURL = sandboxSnapURL
	}

	return &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RedisURL:          os.Getenv("REDIS_URL"),
		KafkaBrokers:      os.Getenv("KAFKA_BROKERS"),
		MidtransServerKey: os.Getenv("MIDTRANS_SERVER_KEY"),
		MidtransSnapURL:   snapURL,
		JaegerEndpoint:    os.Getenv("JAEGER_ENDPOINT"),
		Port:              port,
	}
}
