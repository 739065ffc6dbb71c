// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/intavl/fault"
)

// Check - verify ordering, balance, cached heights and the node count
//
// returns the first inconsistency found or nil
func (tree *Tree) Check() error {
	n, err := check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("count: %d  nodes: %d: %w", tree.count, n, fault.ErrCountMismatch)
	}
	return nil
}

// internal: consistency checker, all keys must be strictly between
// low and high when those are set; returns the sub-tree node count
func check(p *Node, low *int, high *int) (int, error) {
	if nil == p {
		return 0, nil
	}
	if (nil != low && p.key <= *low) || (nil != high && p.key >= *high) {
		return 0, fmt.Errorf("key: %d: %w", p.key, fault.ErrKeyOrder)
	}

	nl, err := check(p.left, low, &p.key)
	if nil != err {
		return 0, err
	}
	nr, err := check(p.right, &p.key, high)
	if nil != err {
		return 0, err
	}

	lh := p.left.Height()
	rh := p.right.Height()
	h := 1 + lh
	if rh > lh {
		h = 1 + rh
	}
	if h != p.height {
		return 0, fmt.Errorf("key: %d  height: %d  expected: %d: %w", p.key, p.height, h, fault.ErrHeightMismatch)
	}
	if b := lh - rh; b > 1 || b < -1 {
		return 0, fmt.Errorf("key: %d  balance: %+d: %w", p.key, b, fault.ErrUnbalancedNode)
	}
	return 1 + nl + nr, nil
}
