// Copyright 2018 The Cockroach Authors.
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

// Node represents an abstraction of a node exposed to the
// augmentation and low-level iteration primitives.
type Node[K, A any] interface {

	// IsLeaf returns whether this node has no children.
	IsLeaf() bool

	// Key returns the key stored in this node.
	Key() K

	// Height returns the cached height of the subtree rooted at this node.
	// A leaf has height 0.
	Height() int

	// Left returns the augmentation of the left child, or the zero value
	// (nil for pointer augmentations) if there is no left child.
	Left() A

	// Right returns the augmentation of the right child, or the zero value
	// if there is no right child.
	Right() A

	// Config returns the configuration of the tree holding this node.
	Config() *Config[K]
}

// Aug is a data structure which augments a node of the tree. It is updated
// when the structure or contents of the subtree rooted at the current node
// changes.
type Aug[K, A any] interface {
	*A

	// Update recomputes the augmentation from the node's key and the
	// augmentations of its children, which are always up to date when
	// Update is called. The method must return true if the augmentation's
	// value changed.
	Update(Node[K, *A]) (changed bool)
}

// NoopAug is an augmentation which carries no state.
type NoopAug[K any] struct{}

// Update implements Aug.
func (*NoopAug[K]) Update(Node[K, *NoopAug[K]]) bool { return false }
