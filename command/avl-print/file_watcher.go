// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/intavl/fault"
)

const (
	fileWatcherLoggerPrefix = "file-watcher"

	// allow an editor to rename the old file away and then create
	// the new one before deciding the file is gone
	replaceRetryCount = 10
	replaceRetryDelay = 50 * time.Millisecond
)

//go:generate mockgen -source=file_watcher.go -destination=mock_file_watcher_test.go -package=main

// FileWatcher - signal changes to a single file
type FileWatcher interface {
	Start() error
	Stop() error
	ChangeChannel() <-chan struct{}
	RemoveChannel() <-chan struct{}
}

// WatcherChannel - one slot each so bursts of events collapse
type WatcherChannel struct {
	change chan struct{}
	remove chan struct{}
}

type fileWatcherData struct {
	log      *logger.L
	channel  WatcherChannel
	watcher  *fsnotify.Watcher
	filePath string
}

func newFileWatcher(targetFile string, log *logger.L) (FileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("file: %q: %w", filePath, fault.ErrNotFoundConfigFile)
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &fileWatcherData{
		log:     log,
		watcher: watcher,
		channel: WatcherChannel{
			change: make(chan struct{}, 1),
			remove: make(chan struct{}, 1),
		},
		filePath: filePath,
	}, nil
}

// Start - begin watching in a background go routine
//
// the directory is watched rather than the file so that an editor
// replacing the file is seen as a change
func (w *fileWatcherData) Start() error {
	err := w.watcher.Add(filepath.Dir(w.filePath))
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}

	go func() {
	loop:
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					break loop
				}
				if filepath.Clean(event.Name) != w.filePath {
					continue loop
				}
				w.log.Debugf("file event: %v", event)

				if watcherEventFileChange(event) {
					w.log.Info("sending config change event…")
					w.sendEvent(w.channel.change, "change")
					continue loop
				}

				if watcherEventFileRemove(event) {
					if w.replaced() {
						w.sendEvent(w.channel.change, "change")
						continue loop
					}
					w.log.Warnf("file: %s removed, stop", w.filePath)
					w.sendEvent(w.channel.remove, "remove")
					break loop
				}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					break loop
				}
				w.log.Errorf("watcher error: %s", err)
			}
		}
		w.log.Info("stopped")
	}()

	return nil
}

// Stop - release the watcher, the go routine then exits
func (w *fileWatcherData) Stop() error {
	return w.watcher.Close()
}

func (w *fileWatcherData) ChangeChannel() <-chan struct{} {
	return w.channel.change
}

func (w *fileWatcherData) RemoveChannel() <-chan struct{} {
	return w.channel.remove
}

// true if the file exists again within a short while
func (w *fileWatcherData) replaced() bool {
	for i := 0; i < replaceRetryCount; i += 1 {
		if _, err := os.Stat(w.filePath); nil == err {
			return true
		}
		time.Sleep(replaceRetryDelay)
	}
	return false
}

func (w *fileWatcherData) sendEvent(ch chan<- struct{}, name string) {
	select {
	case ch <- struct{}{}:
	default:
		w.log.Debugf("event channel: %s full, discard event", name)
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}
