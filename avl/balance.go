// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of left sub-tree minus height of right sub-tree
func balanceOf(p *Node) int {
	if nil == p {
		return 0
	}
	return p.left.Height() - p.right.Height()
}

// recompute the cached height from the children
func fixHeight(p *Node) {
	lh := p.left.Height()
	rh := p.right.Height()
	if lh > rh {
		p.height = 1 + lh
	} else {
		p.height = 1 + rh
	}
}

// single right rotation, returns the new local root
//
//          e              c
//         / \            / \
//        c   f    →     a   e
//       / \                / \
//      a   d              d   f
func rotateRight(e *Node) *Node {
	c := e.left
	e.left = c.right
	c.right = e

	// e is now below c so must be first
	fixHeight(e)
	fixHeight(c)
	return c
}

// single left rotation, returns the new local root
//
//        a                  c
//       / \                / \
//      b   c      →       a   e
//         / \            / \
//        d   e          b   d
func rotateLeft(a *Node) *Node {
	c := a.right
	a.right = c.left
	c.left = a

	fixHeight(a)
	fixHeight(c)
	return c
}

// rebalance - recompute height and restore the balance at p
//
// called on every node of the path back to the root after a change
// below it, returns the possibly new root of the sub-tree
func rebalance(p *Node) *Node {
	fixHeight(p)

	switch b := balanceOf(p); {
	case b > 1: // left branch is too high
		if balanceOf(p.left) >= 0 {
			// single LL rotation
			return rotateRight(p)
		}
		// double LR rotation
		p.left = rotateLeft(p.left)
		return rotateRight(p)

	case b < -1: // right branch is too high
		if balanceOf(p.right) <= 0 {
			// single RR rotation
			return rotateLeft(p)
		}
		// double RL rotation
		p.right = rotateRight(p.right)
		return rotateLeft(p)

	default:
		return p
	}
}
