// Package config provides configuration loading from file, environment and flags.
package config

import (
	"fmt"
	"net"
	"reflect"
	"strings"
	"time"

	"github.com/fgeck/wakeonlan/internal/magic"
	"github.com/fgeck/wakeonlan/internal/models"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultDestination is the limited broadcast address.
const DefaultDestination = "255.255.255.255"

const (
	keyMAC           = "mac"
	keyTo            = "to"
	keyListenAddress = "listen.address"
	keyListenPort    = "listen.port"
	keyListenTimeout = "listen.timeout"
)

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"mac":     keyMAC,
	"to":      keyTo,
	"address": keyListenAddress,
	"port":    keyListenPort,
	"timeout": keyListenTimeout,
}

type rawConfig struct {
	MAC    net.HardwareAddr `mapstructure:"mac"`
	To     net.IP           `mapstructure:"to"`
	Listen rawListen        `mapstructure:"listen"`
}

type rawListen struct {
	Address string        `mapstructure:"address"`
	Port    int           `mapstructure:"port"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Parser handles configuration loading.
type Parser struct {
	v *viper.Viper
}

// NewParser creates a new configuration parser with defaults and
// environment bindings in place.
func NewParser() *Parser {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault(keyTo, DefaultDestination)
	v.SetDefault(keyListenAddress, "0.0.0.0")
	v.SetDefault(keyListenPort, magic.Port)
	v.SetDefault(keyListenTimeout, "0s")

	// MAC and TO, without prefix, like the flags they back.
	_ = v.BindEnv(keyMAC, "MAC")
	_ = v.BindEnv(keyTo, "TO")

	return &Parser{v: v}
}

// BindFlags binds the known flags present in fs. Flags set on the command
// line take precedence over environment and file values.
func (p *Parser) BindFlags(fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := p.v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag %s: %w", name, err)
		}
	}
	return nil
}

// Load reads the optional configuration file at path and resolves the
// configuration. An empty path uses environment, flags and defaults only.
func (p *Parser) Load(path string) (*models.Config, error) {
	if path != "" {
		p.v.SetConfigFile(path)
		if err := p.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	return p.parse()
}

// LoadReader loads configuration from a string (useful for testing).
func (p *Parser) LoadReader(content string) (*models.Config, error) {
	if err := p.v.ReadConfig(strings.NewReader(content)); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	return p.parse()
}

func (p *Parser) parse() (*models.Config, error) {
	var raw rawConfig
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		stringToHardwareAddrHookFunc(),
		mapstructure.StringToIPHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := p.v.Unmarshal(&raw, hook); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if len(raw.MAC) == 0 {
		raw.MAC = nil
	}
	if raw.Listen.Port < 0 || raw.Listen.Port > 65535 {
		return nil, fmt.Errorf("listen.port must be between 0 and 65535, got %d", raw.Listen.Port)
	}
	if raw.Listen.Timeout < 0 {
		return nil, fmt.Errorf("listen.timeout must not be negative")
	}

	return &models.Config{
		Wake: models.WakeConfig{
			MACAddress:  raw.MAC,
			Destination: raw.To,
		},
		Listen: models.ListenConfig{
			Address: raw.Listen.Address,
			Port:    raw.Listen.Port,
			Timeout: raw.Listen.Timeout,
		},
	}, nil
}

func stringToHardwareAddrHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(net.HardwareAddr{}) {
			return data, nil
		}

		s, _ := data.(string)
		if s == "" {
			return net.HardwareAddr(nil), nil
		}
		addr, err := magic.ParseHardwareAddr(s)
		if err != nil {
			return nil, err
		}
		return net.HardwareAddr(addr[:]), nil
	}
}

// Validate checks that cfg describes a target that can be woken.
func Validate(cfg *models.WakeConfig) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	if len(cfg.MACAddress) == 0 {
		return fmt.Errorf("mac address is required (--mac or MAC)")
	}

	if len(cfg.MACAddress) != magic.AddrLen {
		return fmt.Errorf("mac must be a 48-bit address, got %d bytes", len(cfg.MACAddress))
	}

	if cfg.Destination == nil {
		return fmt.Errorf("destination address is required (--to or TO)")
	}

	return nil
}
