// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package abstract

import "fmt"

// Policy determines how the tree restores its shape after a mutation.
type Policy int8

const (

	// AVL keeps the tree height-balanced: after every insertion or removal
	// the children of every node differ in height by at most one.
	AVL Policy = iota

	// Unbalanced maintains only the BST ordering and cached heights. It
	// exists mostly for comparison and testing.
	Unbalanced
)

func (p Policy) String() string {
	switch p {
	case AVL:
		return "avl"
	case Unbalanced:
		return "unbalanced"
	default:
		return fmt.Sprintf("Policy(%d)", int8(p))
	}
}

// Config is used to configure the tree. It consists of a comparison function
// for keys, the rebalancing policy and any auxiliary data provided by the
// instantiator. It is provided to augmentations and on the low-level
// iterator for use by augmented searches.
type Config[K any] struct {
	Policy Policy

	// Aux is opaque to the tree. Augmentations which need more than the key
	// to compute their state (e.g. accessors for an interval's end) find it
	// here.
	Aux any

	cmp func(K, K) int
}

// Compare compares two values using the same comparison function as the Map.
func (c *Config[K]) Compare(a, b K) int { return c.cmp(a, b) }

// retraceFunc walks from a node whose subtree changed up to the root,
// refreshing cached state and restoring balance as the policy requires.
type retraceFunc[K, V, A any, AP Aug[K, A]] func(m *Map[K, V, A, AP], from handle)

type config[K, V, A any, AP Aug[K, A]] struct {
	Config[K]
	retrace retraceFunc[K, V, A, AP]
}

func makeConfig[K, V, A any, AP Aug[K, A]](
	cmp func(K, K) int, policy Policy, aux any,
) (c config[K, V, A, AP]) {
	c.cmp = cmp
	c.Policy = policy
	c.Aux = aux
	switch policy {
	case AVL:
		c.retrace = retraceBalanced[K, V, A, AP]
	case Unbalanced:
		c.retrace = retraceUnbalanced[K, V, A, AP]
	default:
		panic(fmt.Sprintf("unknown rebalancing policy %v", policy))
	}
	return c
}
