// Package pool keeps reusable instances cloned from a prototype. Idle
// instances are parked inactive under a container node and handed out again
// before any new clone is made.
package pool

import (
	"github.com/bnema/gamekit/internal/domain"
	"github.com/bnema/gamekit/internal/ports"
	"github.com/bnema/gamekit/internal/scene"
)

type Instance interface {
	comparable
	SetActive(active bool)
	SetParent(parent *scene.Node)
}

type Prototype[T any] interface {
	Clone() T
}

// PrototypeFunc builds a fresh instance on every call.
type PrototypeFunc[T any] func() T

func (f PrototypeFunc[T]) Clone() T {
	return f()
}

// Observer is notified of pool activity. Implementations must not call back
// into the pool.
type Observer interface {
	InstanceCreated()
	InstanceAcquired(reused bool)
	InstanceReleased()
}

type noopObserver struct{}

func (noopObserver) InstanceCreated()      {}
func (noopObserver) InstanceAcquired(bool) {}
func (noopObserver) InstanceReleased()     {}

type Option func(*options)

type options struct {
	observer Observer
}

func WithObserver(observer Observer) Option {
	return func(o *options) {
		if observer != nil {
			o.observer = observer
		}
	}
}

type Pool[T Instance] struct {
	prototype Prototype[T]
	container *scene.Node
	idle      []T
	created   int
	observer  Observer
}

var _ ports.InstancePool[*scene.Node] = (*Pool[*scene.Node])(nil)

// New clones initialCount idle instances under container. It returns nil when
// prototype is absent; callers treat a nil pool as "no pool".
func New[T Instance](prototype Prototype[T], initialCount int, container *scene.Node, opts ...Option) *Pool[T] {
	if domain.Absent(prototype) {
		return nil
	}

	cfg := options{observer: noopObserver{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	if initialCount < 0 {
		initialCount = 0
	}

	p := &Pool[T]{
		prototype: prototype,
		container: container,
		idle:      make([]T, 0, initialCount),
		observer:  cfg.observer,
	}

	for i := 0; i < initialCount; i++ {
		p.idle = append(p.idle, p.create())
	}

	return p
}

// Acquire hands out the oldest idle instance, or a new clone when none is
// idle. The instance is returned inactive.
func (p *Pool[T]) Acquire() T {
	if len(p.idle) > 0 {
		instance := p.idle[0]
		var zero T
		p.idle[0] = zero
		p.idle = p.idle[1:]
		p.observer.InstanceAcquired(true)
		return instance
	}

	instance := p.create()
	p.observer.InstanceAcquired(false)
	return instance
}

// Release deactivates instance and parks it back under the container.
// Releasing the same instance twice is not guarded.
func (p *Pool[T]) Release(instance T) {
	instance.SetActive(false)
	instance.SetParent(p.container)
	p.idle = append(p.idle, instance)
	p.observer.InstanceReleased()
}

func (p *Pool[T]) Idle() int {
	return len(p.idle)
}

// Size is the number of instances ever cloned by the pool.
func (p *Pool[T]) Size() int {
	return p.created
}

// Container is the node idle instances are parked under.
func (p *Pool[T]) Container() *scene.Node {
	return p.container
}

func (p *Pool[T]) create() T {
	instance := p.prototype.Clone()
	instance.SetParent(p.container)
	instance.SetActive(false)
	p.created++
	p.observer.InstanceCreated()
	return instance
}

func (p *Pool[T]) isIdle(instance T) bool {
	for _, candidate := range p.idle {
		if candidate == instance {
			return true
		}
	}
	return false
}
