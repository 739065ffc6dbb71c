// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/intavl/avl"
	"github.com/bitmark-inc/intavl/fault"
)

// output formats
const (
	formatTree    = "tree"
	formatInOrder = "inorder"
	formatJSON    = "json"
)

func validFormat(format string) bool {
	switch format {
	case formatTree, formatInOrder, formatJSON:
		return true
	default:
		return false
	}
}

type jsonNode struct {
	Key     int       `json:"key"`
	Height  int       `json:"height"`
	Balance *int      `json:"balance,omitempty"`
	Left    *jsonNode `json:"left,omitempty"`
	Right   *jsonNode `json:"right,omitempty"`
}

type jsonTree struct {
	Count int       `json:"count"`
	Depth int       `json:"depth"`
	Root  *jsonNode `json:"root"`
}

// write the tree in the selected format
func render(w io.Writer, tree *avl.Tree, format string, heights bool) error {
	switch format {
	case formatTree:
		if tree.IsEmpty() {
			_, err := fmt.Fprintln(w, "(empty)")
			return err
		}
		tree.Print(w, heights)
		return nil

	case formatInOrder:
		keys := inOrder(tree.Root(), make([]string, 0, tree.Count()))
		_, err := fmt.Fprintln(w, strings.Join(keys, " "))
		return err

	case formatJSON:
		j := jsonTree{
			Count: tree.Count(),
			Depth: tree.Root().Height(),
			Root:  toJSON(tree.Root(), heights),
		}
		b, err := json.MarshalIndent(j, "", "  ")
		if nil != err {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err

	default:
		return fmt.Errorf("format: %q: %w", format, fault.ErrInvalidFormat)
	}
}

// keys of a sub-tree in ascending order
func inOrder(p *avl.Node, keys []string) []string {
	if nil == p {
		return keys
	}
	keys = inOrder(p.LeftChild(), keys)
	keys = append(keys, strconv.Itoa(p.Data()))
	return inOrder(p.RightChild(), keys)
}

func toJSON(p *avl.Node, balance bool) *jsonNode {
	if nil == p {
		return nil
	}
	j := &jsonNode{
		Key:    p.Data(),
		Height: p.Height(),
		Left:   toJSON(p.LeftChild(), balance),
		Right:  toJSON(p.RightChild(), balance),
	}
	if balance {
		b := p.LeftChild().Height() - p.RightChild().Height()
		j.Balance = &b
	}
	return j
}
