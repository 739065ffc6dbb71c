// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"errors"
	"testing"

	"github.com/bitmark-inc/intavl/fault"
)

func sevenNodes() *Tree {
	tree := New()
	for _, key := range []int{50, 30, 70, 20, 40, 60, 80} {
		tree.Add(key)
	}
	return tree
}

func TestCheckDetectsCorruption(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(tree *Tree)
		err     error
	}{
		{
			name:    "order",
			corrupt: func(tree *Tree) { tree.root.left.right.key = 55 },
			err:     fault.ErrKeyOrder,
		},
		{
			name:    "duplicate",
			corrupt: func(tree *Tree) { tree.root.right.left.key = 50 },
			err:     fault.ErrKeyOrder,
		},
		{
			name:    "height",
			corrupt: func(tree *Tree) { tree.root.left.height = 5 },
			err:     fault.ErrHeightMismatch,
		},
		{
			name:    "count",
			corrupt: func(tree *Tree) { tree.count += 1 },
			err:     fault.ErrCountMismatch,
		},
		{
			name: "balance",
			corrupt: func(tree *Tree) {
				p := tree.root.left
				p.left.left = newNode(10)
				p.left.left.left = newNode(5)
				p.left.left.height = 2
				p.left.height = 3
				p.height = 4
				tree.root.height = 5
				tree.count += 2
			},
			err: fault.ErrUnbalancedNode,
		},
	}

	for _, test := range tests {
		tree := sevenNodes()
		if err := tree.Check(); nil != err {
			t.Fatalf("%s: fresh tree: %s", test.name, err)
		}
		test.corrupt(tree)
		err := tree.Check()
		if !errors.Is(err, test.err) {
			t.Errorf("%s: error: %v  expected: %v", test.name, err, test.err)
		}
		if !fault.IsErrProcess(err) {
			t.Errorf("%s: error: %v  is not a process error", test.name, err)
		}
	}
}

func TestRotationHeights(t *testing.T) {
	// e(c(a,d),f) rotated right becomes c(a,e(d,f))
	a := newNode(1)
	d := newNode(4)
	f := newNode(6)
	c := &Node{left: a, right: d, key: 3, height: 2}
	e := &Node{left: c, right: f, key: 5, height: 3}

	r := rotateRight(e)
	if r != c {
		t.Fatalf("new root: %d  expected: %d", r.key, c.key)
	}
	if c.right != e || e.left != d || c.left != a || e.right != f {
		t.Fatal("links not rotated")
	}
	if 2 != e.height || 3 != c.height {
		t.Fatalf("heights: e: %d  c: %d", e.height, c.height)
	}

	r = rotateLeft(c)
	if r != e || e.left != c || c.right != d {
		t.Fatal("reverse rotation failed")
	}
	if 2 != c.height || 3 != e.height {
		t.Fatalf("heights: c: %d  e: %d", c.height, e.height)
	}
}
