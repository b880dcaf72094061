package pool

import (
	"testing"

	"github.com/bnema/gamekit/internal/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPrefab() *scene.Node {
	return scene.NewNode("Prefab")
}

func TestPoolInitializesWithInactiveChildren(t *testing.T) {
	t.Parallel()

	parent := scene.NewNode("Parent")
	p := New[*scene.Node](newPrefab(), 5, parent)
	require.NotNil(t, p)

	assert.Equal(t, 5, parent.ChildCount())
	assert.Equal(t, 5, p.Idle())
	for _, child := range parent.Children() {
		assert.False(t, child.Active())
	}
}

func TestPoolNilPrototypeCreatesNoPool(t *testing.T) {
	t.Parallel()

	parent := scene.NewNode("Parent")
	var prefab *scene.Node

	assert.Nil(t, New[*scene.Node](nil, 3, parent))
	assert.Nil(t, New[*scene.Node](prefab, 3, parent))
	assert.Nil(t, New[*scene.Node](PrototypeFunc[*scene.Node](nil), 3, parent))
	assert.Equal(t, 0, parent.ChildCount())
}

func TestPoolAcquireReturnsWarmInstancesBeforeCloning(t *testing.T) {
	t.Parallel()

	for _, warm := range []int{0, 1, 4, 10} {
		parent := scene.NewNode("Parent")
		p := New[*scene.Node](newPrefab(), warm, parent)
		require.NotNil(t, p)

		for i := 0; i < warm; i++ {
			instance := p.Acquire()
			require.NotNil(t, instance)
			assert.Equal(t, warm, p.Size(), "warm=%d acquire=%d must not clone", warm, i)
		}

		extra := p.Acquire()
		require.NotNil(t, extra)
		assert.Equal(t, warm+1, p.Size())
		assert.Same(t, parent, extra.Parent())
		assert.Equal(t, warm+1, parent.ChildCount())
	}
}

func TestPoolAcquiredInstanceIsNotIdleUntilReleased(t *testing.T) {
	t.Parallel()

	p := New[*scene.Node](newPrefab(), 3, scene.NewNode("Parent"))
	require.NotNil(t, p)

	instance := p.Acquire()
	assert.False(t, p.isIdle(instance))
	assert.Equal(t, 2, p.Idle())

	p.Release(instance)
	assert.True(t, p.isIdle(instance))
	assert.Equal(t, 3, p.Idle())
}

func TestPoolReleaseThenAcquireReusesInstance(t *testing.T) {
	t.Parallel()

	p := New[*scene.Node](newPrefab(), 0, scene.NewNode("Parent"))
	require.NotNil(t, p)

	first := p.Acquire()
	p.Release(first)
	second := p.Acquire()

	assert.Same(t, first, second)
	assert.Equal(t, 1, p.Size())
}

func TestPoolReleasedInstanceIsInactiveUnderContainer(t *testing.T) {
	t.Parallel()

	parent := scene.NewNode("Parent")
	elsewhere := scene.NewNode("Elsewhere")
	p := New[*scene.Node](newPrefab(), 0, parent)
	require.NotNil(t, p)

	instance := p.Acquire()
	instance.SetActive(true)
	instance.SetParent(elsewhere)

	p.Release(instance)

	assert.False(t, instance.Active())
	assert.Same(t, parent, instance.Parent())
	assert.Same(t, p.Container(), instance.Parent())
	assert.Equal(t, 0, elsewhere.ChildCount())
}

func TestPoolRecyclesInFIFOOrder(t *testing.T) {
	t.Parallel()

	p := New[*scene.Node](newPrefab(), 0, scene.NewNode("Parent"))
	require.NotNil(t, p)

	a := p.Acquire()
	b := p.Acquire()
	p.Release(b)
	p.Release(a)

	assert.Same(t, b, p.Acquire())
	assert.Same(t, a, p.Acquire())
}

func TestPoolWithPrototypeFunc(t *testing.T) {
	t.Parallel()

	built := 0
	proto := PrototypeFunc[*scene.Node](func() *scene.Node {
		built++
		return scene.NewNode("spark")
	})

	p := New[*scene.Node](proto, 2, scene.NewNode("Parent"))
	require.NotNil(t, p)
	p.Acquire()
	p.Acquire()
	p.Acquire()

	assert.Equal(t, 3, built)
}

func TestPoolNotifiesObserver(t *testing.T) {
	t.Parallel()

	observer := &countingObserver{}
	p := New[*scene.Node](newPrefab(), 1, scene.NewNode("Parent"), WithObserver(observer))
	require.NotNil(t, p)

	first := p.Acquire()
	p.Acquire()
	p.Release(first)

	assert.Equal(t, 2, observer.created)
	assert.Equal(t, 1, observer.reused)
	assert.Equal(t, 1, observer.fresh)
	assert.Equal(t, 1, observer.released)
}

type countingObserver struct {
	created  int
	reused   int
	fresh    int
	released int
}

func (o *countingObserver) InstanceCreated() { o.created++ }

func (o *countingObserver) InstanceAcquired(reused bool) {
	if reused {
		o.reused++
		return
	}
	o.fresh++
}

func (o *countingObserver) InstanceReleased() { o.released++ }
