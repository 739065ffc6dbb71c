// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree of unique integer keys
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches the height of the sub-tree below it and the tree
// is rebalanced on the way back up from every insert or delete, at
// most one single or double rotation per ancestor.
//
// Nodes are exposed read-only through Root so that callers can walk
// and display the structure; only the tree itself changes them.
//
// Duplicate inserts and deletes of absent keys are not errors, Add and
// Remove simply return false and leave the tree unchanged.
package avl
