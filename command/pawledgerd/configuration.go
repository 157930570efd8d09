// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/pawledger/pawledgerd/amount"
	"github.com/pawledger/pawledgerd/chain"
	"github.com/pawledger/pawledgerd/configuration"
	"github.com/pawledger/pawledgerd/fault"
	"github.com/pawledger/pawledgerd/ledger"
	"github.com/pawledger/pawledgerd/metrics"
	"github.com/pawledger/pawledgerd/rpc/listeners"
	"github.com/pawledger/pawledgerd/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultKeyFile         = "rpc.key"
	defaultCertificateFile = "rpc.crt"
	defaultDeploymentFile  = "deployment.json"

	defaultLevelDBDirectory = "data"
	defaultLiveDatabase     = chain.Live + ".leveldb"
	defaultTestingDatabase  = chain.Testing + ".leveldb"
	defaultLocalDatabase    = chain.Local + ".leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "pawledgerd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients    = 10
	defaultAuditInterval = 60 // seconds
)

// path expanded or calculated defaults
var (
	defaultLogLevels = map[string]string{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - LevelDB location
type DatabaseType struct {
	Directory string `gluamapper:"directory" yaml:"directory" json:"directory"`
	Name      string `gluamapper:"name" yaml:"name" json:"name"`
}

// TokenType - parameters used when the ledger is first created
type TokenType struct {
	Name          string `gluamapper:"name" yaml:"name" json:"name"`
	Symbol        string `gluamapper:"symbol" yaml:"symbol" json:"symbol"`
	Decimals      int    `gluamapper:"decimals" yaml:"decimals" json:"decimals"`
	InitialSupply string `gluamapper:"initial_supply" yaml:"initial_supply" json:"initial_supply"`
	Owner         string `gluamapper:"owner" yaml:"owner" json:"owner"`
	PauseTreasury bool   `gluamapper:"pause_treasury" yaml:"pause_treasury" json:"pause_treasury"`
}

// Configuration - the daemon configuration file
type Configuration struct {
	DataDirectory  string       `gluamapper:"data_directory" yaml:"data_directory" json:"data_directory"`
	PidFile        string       `gluamapper:"pidfile" yaml:"pidfile" json:"pidfile"`
	Chain          string       `gluamapper:"chain" yaml:"chain" json:"chain"`
	Database       DatabaseType `gluamapper:"database" yaml:"database" json:"database"`
	DeploymentFile string       `gluamapper:"deployment_file" yaml:"deployment_file" json:"deployment_file"`
	AuditInterval  int          `gluamapper:"audit_interval" yaml:"audit_interval" json:"audit_interval"`

	Token     TokenType                  `gluamapper:"token" yaml:"token" json:"token"`
	ClientRPC listeners.RPCConfiguration `gluamapper:"client_rpc" yaml:"client_rpc" json:"client_rpc"`
	Metrics   metrics.Configuration      `gluamapper:"metrics" yaml:"metrics" json:"metrics"`
	Logging   logger.Configuration       `gluamapper:"logging" yaml:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory:  defaultDataDirectory,
		PidFile:        "", // no PidFile by default
		Chain:          chain.Live,
		DeploymentFile: defaultDeploymentFile,
		AuditInterval:  defaultAuditInterval,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultLiveDatabase,
		},

		Token: TokenType{
			Decimals: ledger.DefaultDecimals,
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// if any test mode and the database file was not specified
	// switch to appropriate default.  Abort if then chain name is
	// not recognised.
	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, fmt.Errorf("Chain: %q is not supported", options.Chain)
	}

	// if database was not changed from default
	if options.Database.Name == defaultLiveDatabase {
		switch options.Chain {
		case chain.Live:
			// already correct default
		case chain.Testing:
			options.Database.Name = defaultTestingDatabase
		case chain.Local:
			options.Database.Name = defaultLocalDatabase
		default:
			return nil, fmt.Errorf("Chain: %s no default database setting", options.Chain)
		}
	}

	if options.Token.Decimals < 0 || options.Token.Decimals > amount.MaximumDecimals {
		return nil, fault.InvalidDecimals
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if err := util.CheckDirectory(options.DataDirectory); nil != err {
		return nil, fmt.Errorf("Path: %q: %s", options.DataDirectory, err)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
		&options.DeploymentFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// parameters for a new ledger from the token section
func (c *Configuration) parameters() (ledger.Parameters, error) {
	t := c.Token
	return ledger.NewParameters(t.Name, t.Symbol, uint8(t.Decimals), t.InitialSupply, t.Owner)
}

// ledger options from the token section
func (c *Configuration) ledgerOptions() []ledger.Option {
	if c.Token.PauseTreasury {
		return []ledger.Option{ledger.WithPausePolicy(ledger.PauseAll)}
	}
	return nil
}
