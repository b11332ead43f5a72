package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// SourceConfig toggles one API-backed source on or off.
type SourceConfig struct {
	Enabled bool `yaml:"enabled"`
}

// JungleConfig configures the browser-driven source and its worker process.
type JungleConfig struct {
	Enabled        bool   `yaml:"enabled"`
	WorkerBin      string `yaml:"worker_bin"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// EmailConfig configures the opt-in LinkedIn job-alert inbox source. The
// IMAP password never lives here; it comes from the OS keychain.
type EmailConfig struct {
	Enabled          bool     `yaml:"enabled"`
	IMAPHost         string   `yaml:"imap_host"`
	IMAPPort         int      `yaml:"imap_port"`
	Username         string   `yaml:"username"`
	Mailbox          string   `yaml:"mailbox"`
	SearchSubjectAny []string `yaml:"search_subject_any"`
	MaxMessages      int      `yaml:"max_messages"`
}

type Config struct {
	App struct {
		Port    int    `yaml:"port"`
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Scrape struct {
		MaxResults            int     `yaml:"max_results"`
		RequestTimeoutSeconds int     `yaml:"request_timeout_seconds"`
		RetryMaxAttempts      int     `yaml:"retry_max_attempts"`
		RetryBaseDelaySeconds float64 `yaml:"retry_base_delay_seconds"`
		HostRatePerSecond     float64 `yaml:"host_rate_per_second"`
		HostRateBurst         int     `yaml:"host_rate_burst"`
	} `yaml:"scrape"`

	Sources struct {
		Default   []string     `yaml:"default"`
		RemoteOK  SourceConfig `yaml:"remoteok"`
		Jobicy    SourceConfig `yaml:"jobicy"`
		Arbeitnow SourceConfig `yaml:"arbeitnow"`
		Jungle    JungleConfig `yaml:"welcometothejungle"`
	} `yaml:"sources"`

	Email EmailConfig `yaml:"email"`

	Pagination struct {
		DefaultLimit int `yaml:"default_limit"`
		MaxLimit     int `yaml:"max_limit"`
	} `yaml:"pagination"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

func (c Config) RequestTimeout() time.Duration {
	if c.Scrape.RequestTimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.Scrape.RequestTimeoutSeconds) * time.Second
}

func (c Config) WorkerTimeout() time.Duration {
	if c.Sources.Jungle.TimeoutSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(c.Sources.Jungle.TimeoutSeconds) * time.Second
}

func (c Config) RetryBaseDelay() time.Duration {
	if c.Scrape.RetryBaseDelaySeconds <= 0 {
		return time.Second
	}
	return time.Duration(c.Scrape.RetryBaseDelaySeconds * float64(time.Second))
}
