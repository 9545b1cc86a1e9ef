package arena

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/Gameaday/pokermon/internal/monster"
)

// Configuration defaults applied to fields a config file leaves unset.
const (
	DefaultHost      = "127.0.0.1"
	DefaultPort      = 8089
	DefaultTimeoutMS = 2000
)

// Config is the on-disk arena configuration.
type Config struct {
	Arena ServerSettings `hcl:"arena,block"`
}

// ServerSettings is the arena block of a config file.
type ServerSettings struct {
	Host      string `hcl:"host,optional"`
	Port      int    `hcl:"port,optional"`
	TimeoutMS int    `hcl:"timeout_ms,optional"`
	Seed      int64  `hcl:"seed,optional"`
	LogFile   string `hcl:"log_file,optional"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Arena: ServerSettings{
			Host:      DefaultHost,
			Port:      DefaultPort,
			TimeoutMS: DefaultTimeoutMS,
		},
	}
}

// LoadConfig reads an HCL configuration file. A missing file is not an
// error and yields the defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", diags.Error())
	}

	var config Config
	if diags := gohcl.DecodeBody(file.Body, nil, &config); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Arena.Host == "" {
		c.Arena.Host = DefaultHost
	}
	if c.Arena.Port == 0 {
		c.Arena.Port = DefaultPort
	}
	if c.Arena.TimeoutMS == 0 {
		c.Arena.TimeoutMS = DefaultTimeoutMS
	}
}

// Validate checks the configuration for values no server can run with.
func (c *Config) Validate() error {
	if c.Arena.Port < 1 || c.Arena.Port > 65535 {
		return fmt.Errorf("port %d is out of range", c.Arena.Port)
	}
	if c.Arena.TimeoutMS < 0 {
		return fmt.Errorf("timeout_ms must not be negative, got %d", c.Arena.TimeoutMS)
	}
	return nil
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Arena.Host, strconv.Itoa(c.Arena.Port))
}

// Timeout returns the per-request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Arena.TimeoutMS) * time.Millisecond
}

// Build assembles a ready-to-start server from the configuration. The
// database may be nil, which limits the arena to decision traffic.
func (c *Config) Build(db *monster.Database, logger *log.Logger) (*Server, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	svc := NewService(db, c.Arena.Seed, c.Timeout(), nil, logger)
	return NewServer(c.Addr(), svc, logger), nil
}
