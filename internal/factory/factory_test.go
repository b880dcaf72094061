package factory

import (
	"io"
	"testing"

	"github.com/bnema/gamekit/internal/domain"
	"github.com/bnema/gamekit/internal/pool"
	"github.com/bnema/gamekit/internal/scene"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFactory(prefab *scene.Node) *Factory[*scene.Node] {
	log := logrus.New()
	log.SetOutput(io.Discard)

	return New[*scene.Node](prefab, scene.NewNode("FactoryRoot"), WithLogger[*scene.Node](log))
}

func TestFactoryWarmPoolCreatesDefaultCountInactive(t *testing.T) {
	t.Parallel()

	f := newTestFactory(scene.NewNode("Prefab"))
	f.WarmPool()

	require.NotNil(t, f.Pool())
	assert.Equal(t, DefaultWarmCount, f.Root().ChildCount())
	for _, child := range f.Root().Children() {
		assert.False(t, child.Active())
	}
}

func TestFactoryWarmPoolIsIdempotent(t *testing.T) {
	t.Parallel()

	f := newTestFactory(scene.NewNode("Prefab"))
	f.WarmPool()
	poolRef := f.Pool()
	childCount := f.Root().ChildCount()

	f.WarmPool()

	assert.Same(t, poolRef, f.Pool())
	assert.Equal(t, childCount, f.Root().ChildCount())
}

func TestFactorySpawnActivatesAndSetsPose(t *testing.T) {
	t.Parallel()

	f := newTestFactory(scene.NewNode("Prefab"))
	f.WarmPool()

	position := domain.Vec3{X: 1, Y: 2, Z: 3}
	rotation := domain.QuatFromEuler(10, 20, 30)

	instance, ok := f.Spawn(position, rotation, nil)
	require.True(t, ok)
	require.NotNil(t, instance)

	assert.True(t, instance.Active())
	assert.Equal(t, position, instance.Pose().Position)
	assert.Less(t, rotation.Angle(instance.Pose().Rotation), 0.0001)
	assert.Same(t, f.Root(), instance.Parent())
}

func TestFactorySpawnReparentsWhenParentGiven(t *testing.T) {
	t.Parallel()

	f := newTestFactory(scene.NewNode("Prefab"))
	holder := scene.NewNode("Holder")

	instance, ok := f.Spawn(domain.Vec3{}, domain.IdentityQuat(), holder)
	require.True(t, ok)

	assert.Same(t, holder, instance.Parent())
	assert.Equal(t, DefaultWarmCount-1, f.Root().ChildCount())
}

func TestFactorySpawnWarmsPoolWhenNotInitialized(t *testing.T) {
	t.Parallel()

	f := newTestFactory(scene.NewNode("Prefab"))

	instance, ok := f.Spawn(domain.Vec3{}, domain.IdentityQuat(), nil)

	require.True(t, ok)
	assert.NotNil(t, f.Pool())
	assert.NotNil(t, instance)
	assert.True(t, instance.Active())
}

func TestFactoryRecycleDeactivatesAndReusesInstance(t *testing.T) {
	t.Parallel()

	f := newTestFactory(scene.NewNode("Prefab"))
	f.WarmPool()

	first, ok := f.Spawn(domain.Vec3{}, domain.IdentityQuat(), nil)
	require.True(t, ok)
	for i := 1; i < DefaultWarmCount; i++ {
		_, ok := f.Spawn(domain.Vec3{}, domain.IdentityQuat(), nil)
		require.True(t, ok)
	}
	assert.True(t, first.Active())

	f.Recycle(first)
	assert.False(t, first.Active())

	second, ok := f.Spawn(domain.Vec3{}, domain.IdentityQuat(), nil)
	require.True(t, ok)
	assert.Same(t, first, second, "factory should reuse recycled instance")
}

func TestFactoryRecycleIsSafeWhenPoolNotWarmed(t *testing.T) {
	t.Parallel()

	f := newTestFactory(scene.NewNode("Prefab"))

	assert.NotPanics(t, func() {
		f.Recycle(nil)
		f.Recycle(scene.NewNode("stray"))
	})
	assert.Nil(t, f.Pool())
}

func TestFactoryWithoutPrototypeDoesNotCreatePool(t *testing.T) {
	t.Parallel()

	f := newTestFactory(nil)
	f.WarmPool()

	assert.Nil(t, f.Pool())
	assert.Equal(t, 0, f.Root().ChildCount())

	instance, ok := f.Spawn(domain.Vec3{}, domain.IdentityQuat(), nil)
	assert.False(t, ok)
	assert.Nil(t, instance)
}

func TestFactorySetPoolUsesInjectedPool(t *testing.T) {
	t.Parallel()

	shared := pool.New[*scene.Node](scene.NewNode("Shared"), 2, scene.NewNode("SharedRoot"))
	require.NotNil(t, shared)

	f := newTestFactory(scene.NewNode("Prefab"))
	f.SetPool(shared)

	instance, ok := f.Spawn(domain.Vec3{}, domain.IdentityQuat(), nil)
	require.True(t, ok)

	assert.Equal(t, "Shared (Clone)", instance.Name())
	assert.Equal(t, 1, shared.Idle())
	assert.Equal(t, 0, f.Root().ChildCount())
}

func TestFactoryWithWarmCount(t *testing.T) {
	t.Parallel()

	f := New[*scene.Node](scene.NewNode("Prefab"), nil, WithWarmCount[*scene.Node](3))
	f.WarmPool()

	assert.Equal(t, 3, f.Root().ChildCount())
}
