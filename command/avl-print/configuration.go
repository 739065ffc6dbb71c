// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/intavl/configuration"
	"github.com/bitmark-inc/intavl/fault"
	"github.com/bitmark-inc/logger"
)

// basic defaults (directories are relative to the configuration file
// or the current directory if there is no configuration file)
const (
	defaultFormat = formatTree

	defaultLogDirectory = "log"
	defaultLogFile      = "avl-print.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// a fresh map each time as the configuration merges into it
func defaultLogLevels() LoglevelMap {
	return LoglevelMap{
		logger.DefaultTag: "critical",
	}
}

// OperationConfiguration - one step of the configuration script
type OperationConfiguration struct {
	Action string    `gluamapper:"action" json:"action"`
	Keys   []float64 `gluamapper:"keys" json:"keys"`
}

// Configuration - everything read from the configuration file
type Configuration struct {
	Format     string                   `gluamapper:"format" json:"format"`
	Heights    bool                     `gluamapper:"heights" json:"heights"`
	Operations []OperationConfiguration `gluamapper:"operations" json:"operations"`
	Logging    logger.Configuration     `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
//
// a blank file name gives the defaults relative to the current directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	baseDirectory, err := os.Getwd()
	if nil != err {
		return nil, err
	}
	if "" != configurationFileName {
		name, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}
		configurationFileName = name
		baseDirectory, _ = filepath.Split(configurationFileName)
	}

	options := &Configuration{
		Format:     defaultFormat,
		Heights:    false,
		Operations: nil,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels:    defaultLogLevels(),
		},
	}

	if "" != configurationFileName {
		if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
			return nil, err
		}
	}

	options.Format = strings.ToLower(options.Format)
	if !validFormat(options.Format) {
		return nil, fmt.Errorf("format: %q: %w", options.Format, fault.ErrInvalidFormat)
	}

	// fail if the log file is not a simple file name
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("log file: %q is not plain name: %w", options.Logging.File, fault.ErrInvalidFormat)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = ensureAbsolute(baseDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// if path is relative prefix it with the directory
func ensureAbsolute(directory string, path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join(directory, path)
	}
	return filepath.Clean(path)
}
