package config

import (
	"time"
)

// WebhookConfig drives the review relay. ForwardURL is the automation
// endpoint new submissions are forwarded to (must be HTTPS); empty means
// relay calls are logged and dropped. InboundSecret protects the public
// /webhooks/review route; OutboundSecret is attached to forwarded requests.
type WebhookConfig struct {
	ForwardURL     string        `yaml:"forward_url"`
	InboundSecret  string        `yaml:"inbound_secret"`
	OutboundSecret string        `yaml:"outbound_secret"`
	Timeout        time.Duration `yaml:"timeout"`
}

func loadWebhookConfig() *WebhookConfig {
	return &WebhookConfig{
		ForwardURL:     getEnv("N8N_WEBHOOK_URL", ""),
		InboundSecret:  getEnv("WEBHOOK_SECRET", ""),
		OutboundSecret: getEnv("WEBHOOK_OUTBOUND_SECRET", ""),
		Timeout:        getEnvAsDuration("WEBHOOK_TIMEOUT", 10*time.Second),
	}
}
