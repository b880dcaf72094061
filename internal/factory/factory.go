// Package factory spawns pooled scene instances at a pose and recycles them.
package factory

import (
	"github.com/bnema/gamekit/internal/domain"
	"github.com/bnema/gamekit/internal/pool"
	"github.com/bnema/gamekit/internal/ports"
	"github.com/bnema/gamekit/internal/scene"
	"github.com/sirupsen/logrus"
)

const DefaultWarmCount = 10

type Spawnable interface {
	pool.Instance
	SetPose(pose domain.Pose)
}

type Option[T Spawnable] func(*Factory[T])

func WithWarmCount[T Spawnable](count int) Option[T] {
	return func(f *Factory[T]) {
		if count >= 0 {
			f.warmCount = count
		}
	}
}

func WithLogger[T Spawnable](log logrus.FieldLogger) Option[T] {
	return func(f *Factory[T]) {
		if log != nil {
			f.log = log
		}
	}
}

func WithPoolOptions[T Spawnable](opts ...pool.Option) Option[T] {
	return func(f *Factory[T]) {
		f.poolOpts = append(f.poolOpts, opts...)
	}
}

type Factory[T Spawnable] struct {
	prototype pool.Prototype[T]
	warmCount int
	root      *scene.Node
	pool      ports.InstancePool[T]
	poolOpts  []pool.Option
	log       logrus.FieldLogger
}

// New binds a factory to prototype. root is the scope idle instances are
// parked under; a detached node is created when root is nil.
func New[T Spawnable](prototype pool.Prototype[T], root *scene.Node, opts ...Option[T]) *Factory[T] {
	if root == nil {
		root = scene.NewNode("factory")
	}

	f := &Factory[T]{
		prototype: prototype,
		warmCount: DefaultWarmCount,
		root:      root,
		log:       logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// WarmPool builds the pool once. Without a prototype no pool is built.
func (f *Factory[T]) WarmPool() {
	if f.pool != nil {
		return
	}

	p := pool.New(f.prototype, f.warmCount, f.root, f.poolOpts...)
	if p == nil {
		f.log.WithField("factory", f.root.Name()).Warn("factory has no prototype, pool not created")
		return
	}

	f.pool = p
}

// SetPool replaces the pool reference. Call it before the first Spawn for it
// to take effect.
func (f *Factory[T]) SetPool(p ports.InstancePool[T]) {
	f.pool = p
}

func (f *Factory[T]) Pool() ports.InstancePool[T] {
	return f.pool
}

func (f *Factory[T]) Root() *scene.Node {
	return f.root
}

// Spawn acquires an instance, places it at position/rotation, moves it under
// parent when one is given and activates it. It reports false when no pool
// can be built.
func (f *Factory[T]) Spawn(position domain.Vec3, rotation domain.Quat, parent *scene.Node) (T, bool) {
	if f.pool == nil {
		f.WarmPool()
	}
	if f.pool == nil {
		var zero T
		return zero, false
	}

	instance := f.pool.Acquire()
	instance.SetPose(domain.Pose{Position: position, Rotation: rotation})
	if parent != nil {
		instance.SetParent(parent)
	}
	instance.SetActive(true)

	return instance, true
}

func (f *Factory[T]) Recycle(instance T) {
	var zero T
	if f.pool == nil || instance == zero {
		return
	}

	f.pool.Release(instance)
}
