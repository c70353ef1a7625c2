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

package avltree

import (
	"github.com/ajwerner/avltree/internal/abstract"
	"golang.org/x/exp/constraints"
)

// Policy determines how a tree restores its shape after a mutation.
type Policy = abstract.Policy

const (
	// AVL keeps every node's subtrees within one level of each other. It is
	// the default.
	AVL = abstract.AVL
	// Unbalanced performs plain binary search tree insertion and removal.
	Unbalanced = abstract.Unbalanced
)

// Option configures a Set or Map.
type Option func(*options)

type options struct {
	policy Policy
}

func makeOptions(opts []Option) options {
	o := options{policy: AVL}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithPolicy selects the rebalancing policy.
func WithPolicy(p Policy) Option {
	return func(o *options) { o.policy = p }
}

// Compare orders values of an ordered type.
func Compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a == b:
		return 0
	default:
		return 1
	}
}

// MakeOrderedSet returns an empty Set of an ordered type.
func MakeOrderedSet[T constraints.Ordered](opts ...Option) *Set[T] {
	return NewSet(Compare[T], opts...)
}
