// Copyright 2025 Google LLC. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config holds the YAML configuration of the logs a verifier knows
// about, and of the verification server.
package config

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	ct "github.com/google/ctverify"
	"github.com/google/ctverify/verifier"
	"gopkg.in/yaml.v3"
)

// DefaultListen is the server address used when none is configured.
const DefaultListen = ":8080"

// Config is the top level configuration file.
type Config struct {
	Logs   []LogConfig  `yaml:"Logs"`
	Server ServerConfig `yaml:"Server"`
}

// LogConfig names a log and says where its public key comes from. Exactly
// one of PublicKey and PublicKeyFile is set.
type LogConfig struct {
	Name string `yaml:"Name"`
	// PublicKey is either a PEM PUBLIC KEY block or the base64 encoding of
	// a DER SubjectPublicKeyInfo.
	PublicKey string `yaml:"PublicKey"`
	// PublicKeyFile holds the key in PEM or DER form. A relative path is
	// resolved against the directory of the config file.
	PublicKeyFile string `yaml:"PublicKeyFile"`
	// StrictDER rejects ECDSA signatures that are not canonical DER.
	StrictDER bool `yaml:"StrictDER"`
}

// ServerConfig configures the HTTP verification service. Zero values turn
// the rate limit, the cache and CORS off.
type ServerConfig struct {
	Listen            string        `yaml:"Listen"`
	RequestsPerSecond float64       `yaml:"RequestsPerSecond"`
	Burst             int           `yaml:"Burst"`
	CacheSize         int           `yaml:"CacheSize"`
	CacheTTL          time.Duration `yaml:"CacheTTL"`
	// CORS lists the origins allowed to call the service from a browser.
	CORS []string `yaml:"CORS"`
}

// Load reads, parses and validates the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}
	cfg, err := parse(data)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	for i := range cfg.Logs {
		if f := cfg.Logs[i].PublicKeyFile; f != "" && !filepath.IsAbs(f) {
			cfg.Logs[i].PublicKeyFile = filepath.Join(dir, f)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse parses and validates a config held in memory. Relative key file
// paths are used as given.
func Parse(data []byte) (*Config, error) {
	cfg, err := parse(data)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file as proper YAML: %v", err)
	}
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = DefaultListen
	}
	return &cfg, nil
}

// Validate checks that the config is usable: log names are unique and not
// empty, every log has exactly one loadable key, and server limits are not
// negative.
func (c *Config) Validate() error {
	if len(c.Logs) == 0 {
		return errors.New("empty log config found")
	}
	seen := make(map[string]bool)
	for i, l := range c.Logs {
		if l.Name == "" {
			return fmt.Errorf("log config %d: empty name", i)
		}
		if seen[l.Name] {
			return fmt.Errorf("log config: duplicate name: %s", l.Name)
		}
		seen[l.Name] = true
		if _, err := l.KeyDescriptor(); err != nil {
			return fmt.Errorf("log config %s: %v", l.Name, err)
		}
	}

	s := c.Server
	if s.RequestsPerSecond < 0 {
		return fmt.Errorf("server config: negative RequestsPerSecond %v", s.RequestsPerSecond)
	}
	if s.RequestsPerSecond > 0 && s.Burst <= 0 {
		return fmt.Errorf("server config: Burst must be positive with a rate limit, got %d", s.Burst)
	}
	if s.CacheSize < 0 {
		return fmt.Errorf("server config: negative CacheSize %d", s.CacheSize)
	}
	if s.CacheTTL < 0 {
		return fmt.Errorf("server config: negative CacheTTL %v", s.CacheTTL)
	}
	return nil
}

// KeyDescriptor loads the log's public key.
func (l LogConfig) KeyDescriptor() (*ct.KeyDescriptor, error) {
	switch {
	case l.PublicKey != "" && l.PublicKeyFile != "":
		return nil, errors.New("both PublicKey and PublicKeyFile set")
	case l.PublicKey != "":
		if strings.Contains(l.PublicKey, "-----BEGIN") {
			return ct.KeyDescriptorFromPEM([]byte(l.PublicKey))
		}
		der, err := base64.StdEncoding.DecodeString(strings.TrimSpace(l.PublicKey))
		if err != nil {
			return nil, &ct.KeyError{Msg: "failed to decode base64 public key", Err: err}
		}
		return ct.KeyDescriptorFromDER(der)
	case l.PublicKeyFile != "":
		data, err := os.ReadFile(l.PublicKeyFile)
		if err != nil {
			return nil, &ct.KeyError{Msg: "failed to read public key file", Err: err}
		}
		if bytes.Contains(data, []byte("-----BEGIN")) {
			return ct.KeyDescriptorFromPEM(data)
		}
		return ct.KeyDescriptorFromDER(data)
	default:
		return nil, errors.New("no PublicKey or PublicKeyFile set")
	}
}

// Log returns the config of the named log.
func (c *Config) Log(name string) (LogConfig, bool) {
	for _, l := range c.Logs {
		if l.Name == name {
			return l, true
		}
	}
	return LogConfig{}, false
}

// Verifier builds a LogVerifier for the log, adding WithStrictDER when the
// log asks for it.
func (l LogConfig) Verifier(opts ...verifier.Option) (*verifier.LogVerifier, error) {
	key, err := l.KeyDescriptor()
	if err != nil {
		return nil, err
	}
	if l.StrictDER {
		opts = append(opts, verifier.WithStrictDER())
	}
	return verifier.New(key, opts...), nil
}

// Verifiers builds a LogVerifier for every configured log, keyed by name.
func (c *Config) Verifiers(opts ...verifier.Option) (map[string]*verifier.LogVerifier, error) {
	vs := make(map[string]*verifier.LogVerifier, len(c.Logs))
	for _, l := range c.Logs {
		// Each log gets its own copy so StrictDER does not leak across logs.
		v, err := l.Verifier(append([]verifier.Option(nil), opts...)...)
		if err != nil {
			return nil, fmt.Errorf("log config %s: %v", l.Name, err)
		}
		vs[l.Name] = v
	}
	return vs, nil
}
