// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - removes a specific key from the tree
//
// returns false, leaving the tree unchanged, if the key is not present
func (tree *Tree) Remove(key int) bool {
	removed := false
	tree.root, removed = remove(key, tree.root)
	if removed {
		tree.count -= 1
	}
	return removed
}

// Clear - remove all keys from the tree
//
// drains the tree by deleting the root key until nothing is left
func (tree *Tree) Clear() {
	for nil != tree.root {
		tree.Remove(tree.root.key)
	}
}

// internal delete routine, returns the possibly updated root of the
// sub-tree
func remove(key int, p *Node) (*Node, bool) {
	if nil == p { // key not in tree
		return nil, false
	}

	removed := false
	switch {
	case key < p.key:
		p.left, removed = remove(key, p.left)
	case key > p.key:
		p.right, removed = remove(key, p.right)
	default: // found: delete p
		if nil == p.left && nil == p.right {
			return nil, true
		}
		if nil == p.left {
			return unlink(p, p.right), true
		}
		if nil == p.right {
			return unlink(p, p.left), true
		}

		// two children: take over the key of the in-order
		// predecessor then delete that from the left branch
		q := p.left.last()
		p.key = q.key
		p.left, removed = remove(q.key, p.left)
	}

	if !removed {
		return p, false
	}
	return rebalance(p), true
}

// detach a node that is being replaced by its only child
func unlink(p *Node, child *Node) *Node {
	p.left = nil
	p.right = nil
	return child
}

// internal: highest node in a sub-tree
func (p *Node) last() *Node {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}
