// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/intavl/avl"
	"github.com/bitmark-inc/intavl/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "format", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
		{Long: "heights", HasArg: getoptions.NO_ARGUMENT, Short: 'H'},
		{Long: "watch", HasArg: getoptions.NO_ARGUMENT, Short: 'w'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--config-file=FILE] [--format=tree|inorder|json] [--heights] [--watch] [--] [add|remove|clear|KEY]...", program)
	}

	configurationFile := ""
	switch n := len(options["config-file"]); n {
	case 0:
	case 1:
		configurationFile = options["config-file"][0]
	default:
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, n)
	}

	watch := len(options["watch"]) > 0
	if watch && "" == configurationFile {
		exitwithstatus.Message("%s: %s", program, fault.ErrWatchRequiresConfig)
	}

	commandLine, err := parseArguments(arguments)
	if nil != err {
		exitwithstatus.Message("%s: %s", program, err)
	}

	masterConfiguration, err := loadConfiguration(configurationFile, options)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	// ------------------
	// start of real main
	// ------------------

	opsLog := logger.New(operationsLoggerPrefix)

	err = display(os.Stdout, masterConfiguration, commandLine, opsLog)
	if nil != err {
		exitwithstatus.Message("%s: %s", program, err)
	}

	if !watch {
		return
	}

	watcher, err := newFileWatcher(configurationFile, logger.New(fileWatcherLoggerPrefix))
	if nil != err {
		exitwithstatus.Message("%s: file watcher setup failed with error: %s", program, err)
	}

	// wait for CTRL-C before shutting down to allow manual testing
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	session := watchSession{
		configurationFile: configurationFile,
		options:           options,
		commandLine:       commandLine,
		log:               log,
		opsLog:            opsLog,
	}
	if err = session.run(os.Stdout, watcher, ch); nil != err {
		exitwithstatus.Message("%s: file watcher start failed with error: %s", program, err)
	}
}

// what is redisplayed each time the configuration changes
type watchSession struct {
	configurationFile string
	options           map[string][]string
	commandLine       []operation
	log               *logger.L
	opsLog            *logger.L
}

// redisplay on every change until a signal arrives or the file is removed
//
// a configuration that fails to load or apply is logged and the
// previous output stands
func (s *watchSession) run(w io.Writer, watcher FileWatcher, signals <-chan os.Signal) error {
	if err := watcher.Start(); nil != err {
		return err
	}
	defer watcher.Stop()

loop:
	for {
		select {
		case sig := <-signals:
			s.log.Infof("received signal: %v", sig)
			break loop

		case <-watcher.RemoveChannel():
			s.log.Warnf("configuration: %q removed", s.configurationFile)
			break loop

		case <-watcher.ChangeChannel():
			s.log.Infof("configuration: %q changed, reloading", s.configurationFile)
			c, err := loadConfiguration(s.configurationFile, s.options)
			if nil != err {
				s.log.Errorf("reload error: %s", err)
				continue loop
			}
			if err := display(w, c, s.commandLine, s.opsLog); nil != err {
				s.log.Errorf("display error: %s", err)
			}
		}
	}
	return nil
}

// read the configuration then apply command-line overrides
func loadConfiguration(configurationFile string, options map[string][]string) (*Configuration, error) {
	c, err := getConfiguration(configurationFile)
	if nil != err {
		return nil, err
	}

	if n := len(options["format"]); n > 0 {
		format := strings.ToLower(options["format"][n-1])
		if !validFormat(format) {
			return nil, fault.ErrInvalidFormat
		}
		c.Format = format
	}
	if len(options["heights"]) > 0 {
		c.Heights = true
	}

	if len(options["verbose"]) > 0 {
		if nil == c.Logging.Levels {
			c.Logging.Levels = make(map[string]string)
		}
		c.Logging.Levels[logger.DefaultTag] = "debug"
		c.Logging.Console = true
	} else if len(options["quiet"]) > 0 {
		c.Logging.Levels = map[string]string{
			logger.DefaultTag: "critical",
		}
		c.Logging.Console = false
	}
	return c, nil
}

// build a fresh tree from the configuration steps then the
// command line and write it out
func display(w io.Writer, c *Configuration, commandLine []operation, log *logger.L) error {
	operations, err := configOperations(c.Operations)
	if nil != err {
		return err
	}
	operations = append(operations, commandLine...)

	tree := avl.New()
	stats := apply(tree, operations, log)

	if err := tree.Check(); nil != err {
		fault.Criticalf("tree check failed: %s", err)
		return err
	}

	log.Debugf("count: %d  depth: %d  stats: %+v", tree.Count(), tree.Root().Height(), stats)
	return render(w, tree, c.Format, c.Heights)
}
