// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a cell in the tree
//
// fields are only changed by the tree routines in this package
type Node struct {
	left   *Node // left sub-tree
	right  *Node // right sub-tree
	key    int   // key part for ordering
	height int   // of the sub-tree rooted here, a leaf is 1
}

// create a leaf node
func newNode(key int) *Node {
	return &Node{
		left:   nil,
		right:  nil,
		key:    key,
		height: 1,
	}
}

// Data - read the key from a node
func (p *Node) Data() int {
	return p.key
}

// LeftChild - root of the left sub-tree, nil if empty
func (p *Node) LeftChild() *Node {
	if nil == p {
		return nil
	}
	return p.left
}

// RightChild - root of the right sub-tree, nil if empty
func (p *Node) RightChild() *Node {
	if nil == p {
		return nil
	}
	return p.right
}

// Height - the cached height of the sub-tree rooted at this node
//
// an absent node has height zero
func (p *Node) Height() int {
	if nil == p {
		return 0
	}
	return p.height
}
