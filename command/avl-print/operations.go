// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bitmark-inc/intavl/avl"
	"github.com/bitmark-inc/intavl/fault"
	"github.com/bitmark-inc/logger"
)

const (
	operationsLoggerPrefix = "operations"
)

type action int

const (
	actionAdd    action = iota
	actionRemove action = iota
	actionClear  action = iota
)

func (a action) String() string {
	switch a {
	case actionAdd:
		return "add"
	case actionRemove:
		return "remove"
	case actionClear:
		return "clear"
	default:
		return "unknown"
	}
}

// a single change to apply to the tree, key is unused for clear
type operation struct {
	action action
	key    int
}

// counts of what happened while applying operations
type statistics struct {
	Added      int `json:"added"`
	Duplicates int `json:"duplicates"`
	Removed    int `json:"removed"`
	Absent     int `json:"absent"`
	Clears     int `json:"clears"`
}

// convert an action word
func parseAction(word string) (action, bool) {
	switch strings.ToLower(word) {
	case "add", "insert", "+":
		return actionAdd, true
	case "remove", "delete", "-":
		return actionRemove, true
	case "clear":
		return actionClear, true
	default:
		return actionAdd, false
	}
}

// parse command-line words
//
// "add" and "remove" switch the mode for the integers that follow,
// starting in add mode; "clear" empties the tree
func parseArguments(arguments []string) ([]operation, error) {
	operations := make([]operation, 0, len(arguments))
	mode := actionAdd

loop:
	for _, word := range arguments {
		if a, ok := parseAction(word); ok {
			if actionClear == a {
				operations = append(operations, operation{action: actionClear})
			} else {
				mode = a
			}
			continue loop
		}

		key, err := strconv.Atoi(word)
		if nil != err {
			if isNumeric(word) {
				return nil, fmt.Errorf("key: %q: %w", word, fault.ErrInvalidKey)
			}
			return nil, fmt.Errorf("operation: %q: %w", word, fault.ErrUnknownOperation)
		}
		operations = append(operations, operation{action: mode, key: key})
	}
	return operations, nil
}

// looks like an attempt at a number, such as an overflowing one
func isNumeric(word string) bool {
	if strings.HasPrefix(word, "-") || strings.HasPrefix(word, "+") {
		word = word[1:]
	}
	if 0 == len(word) {
		return false
	}
	return '0' <= word[0] && word[0] <= '9'
}

// convert the configuration steps
func configOperations(items []OperationConfiguration) ([]operation, error) {
	operations := make([]operation, 0, len(items))
	for i, item := range items {
		a, ok := parseAction(item.Action)
		if !ok {
			return nil, fmt.Errorf("operations[%d]: action: %q: %w", i+1, item.Action, fault.ErrUnknownOperation)
		}
		if actionClear == a {
			operations = append(operations, operation{action: actionClear})
			continue
		}
		for _, value := range item.Keys {
			key, ok := configKey(value)
			if !ok {
				return nil, fmt.Errorf("operations[%d]: key: %v: %w", i+1, value, fault.ErrInvalidKey)
			}
			operations = append(operations, operation{action: a, key: key})
		}
	}
	return operations, nil
}

// Lua numbers are floating point, only integral values that fit in
// an int are keys
func configKey(value float64) (int, bool) {
	if value != math.Trunc(value) || value < math.MinInt || value >= -math.MinInt {
		return 0, false
	}
	return int(value), true
}

// run the operations in order on the tree
//
// duplicates and absent keys are only counted
func apply(tree *avl.Tree, operations []operation, log *logger.L) statistics {
	stats := statistics{}
	for _, op := range operations {
		switch op.action {
		case actionAdd:
			if tree.Add(op.key) {
				stats.Added += 1
				log.Tracef("add: %d", op.key)
			} else {
				stats.Duplicates += 1
				log.Debugf("add: %d  already present", op.key)
			}
		case actionRemove:
			if tree.Remove(op.key) {
				stats.Removed += 1
				log.Tracef("remove: %d", op.key)
			} else {
				stats.Absent += 1
				log.Debugf("remove: %d  not present", op.key)
			}
		case actionClear:
			log.Debugf("clear: %d nodes", tree.Count())
			tree.Clear()
			stats.Clears += 1
		}
	}
	log.Infof("applied: %d operations  stats: %+v", len(operations), stats)
	return stats
}
