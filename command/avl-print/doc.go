// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Display program for the integer AVL tree
//
// This program builds a tree from the operations listed in an
// optional Lua configuration file followed by those given on the
// command line, then prints the resulting tree as a graphic, an
// in-order key list or JSON.  With --watch it rebuilds and prints
// again each time the configuration file is written.
package main
