// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/nemclient/nemcore/chain"
	"github.com/nemclient/nemcore/fault"
	"github.com/nemclient/nemcore/transactionrecord"
)

// basic defaults (directories are relative to the configuration file)
const (
	defaultNetwork       = chain.TestNetName
	defaultDeadlineHours = 2
	defaultCacheExpiry   = 3600 // seconds

	defaultLogDirectory = "log"
	defaultLogFile      = "nem-cli.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

var defaultLogLevels = LoglevelMap{
	"nem-cli":         "info",
	logger.DefaultTag: "critical",
}

// LoggerType - logging section
type LoggerType struct {
	Directory string      `gluamapper:"directory" json:"directory"`
	File      string      `gluamapper:"file" json:"file"`
	Size      int         `gluamapper:"size" json:"size"`
	Count     int         `gluamapper:"count" json:"count"`
	Console   bool        `gluamapper:"console" json:"console"`
	Levels    LoglevelMap `gluamapper:"levels" json:"levels"`
}

// Configuration - settings for the command line client
type Configuration struct {
	Network       string     `gluamapper:"network" json:"network"`
	DeadlineHours int        `gluamapper:"deadline_hours" json:"deadline_hours"`
	Inbox         string     `gluamapper:"inbox" json:"inbox"`
	CacheExpiry   int        `gluamapper:"cache_expiry" json:"cache_expiry"`
	Logging       LoggerType `gluamapper:"logging" json:"logging"`

	network chain.Network
}

// Default - configuration used when no file is given
//
// paths are relative to the current directory
func Default() *Configuration {
	options := defaults()
	_ = options.validate(".")
	return options
}

func defaults() *Configuration {
	levels := make(LoglevelMap, len(defaultLogLevels))
	for k, v := range defaultLogLevels {
		levels[k] = v
	}
	return &Configuration{
		Network:       defaultNetwork,
		DeadlineHours: defaultDeadlineHours,
		CacheExpiry:   defaultCacheExpiry,
		Logging: LoggerType{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}
}

// Get - read, decode and verify the configuration
func Get(configurationFileName string) (*Configuration, error) {
	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := defaults()
	if err := ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	if err := options.validate(dataDirectory); nil != err {
		return nil, err
	}
	return options, nil
}

func (c *Configuration) validate(dataDirectory string) error {
	network, err := chain.FromName(strings.ToLower(c.Network))
	if nil != err {
		return err
	}
	if _, err := network.VersionTag(); nil != err {
		return err
	}
	c.network = network

	if c.DeadlineHours <= 0 || time.Duration(c.DeadlineHours)*time.Hour > transactionrecord.MaximumDeadline {
		return fault.ErrInvalidDeadline
	}
	if c.CacheExpiry < 0 {
		return fault.ErrInvalidCacheExpiry
	}

	// the log file must be a plain name
	switch filepath.Dir(c.Logging.File) {
	case "", ".":
	default:
		return fault.ErrInvalidLogFile
	}

	c.Logging.Directory = ensureAbsolute(dataDirectory, c.Logging.Directory)
	if "" != c.Inbox {
		c.Inbox = ensureAbsolute(dataDirectory, c.Inbox)
	}
	return nil
}

// ChainNetwork - the validated network
func (c *Configuration) ChainNetwork() chain.Network {
	return c.network
}

// Deadline - validity period of created transactions
func (c *Configuration) Deadline() time.Duration {
	return time.Duration(c.DeadlineHours) * time.Hour
}

// Expiry - how long pending transactions are kept
func (c *Configuration) Expiry() time.Duration {
	return time.Duration(c.CacheExpiry) * time.Second
}

// LoggerConfiguration - settings for logger.Initialise, the log
// directory is created if missing
func (c *Configuration) LoggerConfiguration() (logger.Configuration, error) {
	if err := os.MkdirAll(c.Logging.Directory, 0700); nil != err {
		return logger.Configuration{}, err
	}
	return logger.Configuration{
		Directory: c.Logging.Directory,
		File:      c.Logging.File,
		Size:      c.Logging.Size,
		Count:     c.Logging.Count,
		Console:   c.Logging.Console,
		Levels:    c.Logging.Levels,
	}, nil
}

func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
