// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Add - insert a new key into the tree
//
// returns false, leaving the tree unchanged, if the key is already present
func (tree *Tree) Add(key int) bool {
	added := false
	tree.root, added = insert(key, tree.root)
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert, returns the possibly updated root of
// the sub-tree
func insert(key int, p *Node) (*Node, bool) {
	if nil == p { // insert new node
		return newNode(key), true
	}

	added := false
	switch {
	case key < p.key:
		p.left, added = insert(key, p.left)
	case key > p.key:
		p.right, added = insert(key, p.right)
	default: // duplicate
		return p, false
	}

	if !added {
		return p, false
	}
	return rebalance(p), true
}
