// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific key, nil if not present
func (tree *Tree) Search(key int) *Node {
	return search(key, tree.root)
}

// Contains - true if key is in the tree
func (tree *Tree) Contains(key int) bool {
	return nil != search(key, tree.root)
}

func search(key int, p *Node) *Node {
	for nil != p {
		switch {
		case key < p.key:
			p = p.left
		case key > p.key:
			p = p.right
		default:
			return p
		}
	}
	return nil
}
