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

// Package pqueue provides min-priority queues keyed by an int64 priority.
// A smaller priority value is served first.
package pqueue

import (
	"errors"
	"fmt"
)

// ErrDuplicatePriority is returned by Insert when an element with the same
// priority is already queued. The queue is left unchanged.
var ErrDuplicatePriority = errors.New("duplicate priority")

// Queue is a min-priority queue.
type Queue[E any] interface {
	// Len returns the number of queued elements.
	Len() int
	// IsEmpty returns true if no elements are queued.
	IsEmpty() bool
	// Min returns the element with the smallest priority, if any.
	Min() (E, bool)
	// Insert queues x with the given priority.
	Insert(priority int64, x E) error
	// RemoveMin removes and returns the element with the smallest priority,
	// if any.
	RemoveMin() (E, bool)
}

type entry[E any] struct {
	priority int64
	val      E
}

func duplicate(priority int64) error {
	return fmt.Errorf("%w: %d", ErrDuplicatePriority, priority)
}
