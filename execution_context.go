// Copyright 2025 samber.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// https://github.com/samber/ro/blob/main/licenses/LICENSE.apache.md
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ro

import (
	"context"
	"sync"

	"github.com/ygrebnov/workers"
)

// ExecutionContext abstracts a scheduler able to enqueue a nullary action.
// SubscribeOn and ReceiveOn defer work onto a context; the immediate context
// runs its action before Schedule returns, other contexts may run it later,
// concurrently, or on a different goroutine.
type ExecutionContext interface {
	Schedule(action func())
}

type immediateExecutionContext struct{}

// Immediate returns the ExecutionContext that runs every scheduled action
// synchronously, on the calling goroutine, before Schedule returns.
func Immediate() ExecutionContext {
	return immediateExecutionContext{}
}

func (immediateExecutionContext) Schedule(action func()) {
	if action != nil {
		action()
	}
}

type goroutineExecutionContext struct{}

// Goroutine returns an ExecutionContext that runs each scheduled action on
// its own new goroutine. It does not itself serialize actions; pair it with
// ReceiveOn, whose Subscriber already guarantees per-subscription
// serialization of delivered events.
func Goroutine() ExecutionContext {
	return goroutineExecutionContext{}
}

func (goroutineExecutionContext) Schedule(action func()) {
	if action == nil {
		return
	}

	go recoverUnhandledError(action)
}

// PoolExecutionContext schedules actions onto a bounded worker pool backed by
// github.com/ygrebnov/workers, instead of spawning one goroutine per action.
// Useful for subscribeOn/receiveOn pipelines that fan out across many
// subscriptions and want to cap concurrent OS thread usage.
type PoolExecutionContext struct {
	pool workers.Workers[struct{}]
}

// NewPoolExecutionContext creates an ExecutionContext backed by a fixed-size
// worker pool of `concurrency` workers. The pool is started immediately and
// runs until `ctx` is done.
func NewPoolExecutionContext(ctx context.Context, concurrency uint) *PoolExecutionContext {
	pool := workers.NewOptions[struct{}](
		ctx,
		workers.WithFixedPool(concurrency),
		workers.WithStartImmediately(),
	)

	return &PoolExecutionContext{pool: pool}
}

func (p *PoolExecutionContext) Schedule(action func()) {
	if action == nil {
		return
	}

	_ = p.pool.AddTask(func(taskCtx context.Context) error {
		recoverUnhandledError(action)
		return nil
	})
}

// VirtualExecutionContext is a manually-driven ExecutionContext for tests: it
// queues scheduled actions instead of running them, and runs them only when
// Flush is called. This lets tests assert ordering deterministically instead
// of racing real goroutines or timers.
type VirtualExecutionContext struct {
	mu    sync.Mutex
	queue []func()
}

// NewVirtualExecutionContext creates an empty VirtualExecutionContext.
func NewVirtualExecutionContext() *VirtualExecutionContext {
	return &VirtualExecutionContext{}
}

func (v *VirtualExecutionContext) Schedule(action func()) {
	if action == nil {
		return
	}

	v.mu.Lock()
	v.queue = append(v.queue, action)
	v.mu.Unlock()
}

// Flush runs every action scheduled so far, including actions scheduled by
// other actions during this Flush, and returns how many actions ran.
func (v *VirtualExecutionContext) Flush() int {
	ran := 0

	for {
		v.mu.Lock()
		pending := v.queue
		v.queue = nil
		v.mu.Unlock()

		if len(pending) == 0 {
			return ran
		}

		for _, action := range pending {
			action()
			ran++
		}
	}
}

// Pending reports how many actions are queued and not yet flushed.
func (v *VirtualExecutionContext) Pending() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return len(v.queue)
}
