package application

import (
	"fmt"

	"github.com/bnema/gamekit/internal/domain"
	"github.com/bnema/gamekit/internal/factory"
	"github.com/bnema/gamekit/internal/pool"
	"github.com/bnema/gamekit/internal/scene"
	"github.com/sirupsen/logrus"
)

type PoolBenchRequest struct {
	Warm    int
	Spawn   int
	Recycle int
}

// PoolService drives a factory of scene nodes so pool behaviour can be
// observed from the command line.
type PoolService struct {
	log      logrus.FieldLogger
	observer pool.Observer
}

// NewPoolService forwards pool activity to observer when it is not nil.
func NewPoolService(log logrus.FieldLogger, observer pool.Observer) *PoolService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &PoolService{log: log, observer: observer}
}

// Bench spawns Spawn instances into a scene node, recycles the first Recycle
// of them, then spawns Recycle more so the reuse path is exercised.
func (s *PoolService) Bench(req PoolBenchRequest) (PoolBenchReport, error) {
	if req.Warm < 0 || req.Spawn < 0 || req.Recycle < 0 {
		return PoolBenchReport{}, fmt.Errorf("bench counts must not be negative")
	}
	if req.Recycle > req.Spawn {
		return PoolBenchReport{}, fmt.Errorf("cannot recycle %d of %d spawned instances", req.Recycle, req.Spawn)
	}

	reuse := &reuseCounter{next: s.observer}
	prototype := scene.NewNode("bench-instance")
	root := scene.NewNode("bench-pool")
	stage := scene.NewNode("bench-scene")
	f := factory.New[*scene.Node](
		prototype,
		root,
		factory.WithWarmCount[*scene.Node](req.Warm),
		factory.WithLogger[*scene.Node](s.log),
		factory.WithPoolOptions[*scene.Node](pool.WithObserver(reuse)),
	)

	spawned := make([]*scene.Node, 0, req.Spawn)
	for i := 0; i < req.Spawn; i++ {
		instance, ok := f.Spawn(domain.Vec3{X: float64(i)}, domain.IdentityQuat(), stage)
		if !ok {
			return PoolBenchReport{}, fmt.Errorf("spawn instance %d: no pool", i)
		}
		spawned = append(spawned, instance)
	}

	for _, instance := range spawned[:req.Recycle] {
		f.Recycle(instance)
	}
	for i := 0; i < req.Recycle; i++ {
		if _, ok := f.Spawn(domain.Vec3{Y: float64(i)}, domain.IdentityQuat(), stage); !ok {
			return PoolBenchReport{}, fmt.Errorf("respawn instance %d: no pool", i)
		}
	}

	p, _ := f.Pool().(*pool.Pool[*scene.Node])
	report := PoolBenchReport{
		Warm:     req.Warm,
		Spawned:  req.Spawn + req.Recycle,
		Recycled: req.Recycle,
		Reused:   reuse.reused,
		Active:   stage.ChildCount(),
	}
	if p != nil {
		report.Idle = p.Idle()
		report.Size = p.Size()
		report.Container = p.Container().Name()
		report.Parked = p.Container().ChildCount()
	}

	s.log.WithFields(logrus.Fields{
		"pool":   root.Name(),
		"size":   report.Size,
		"reused": report.Reused,
	}).Debug("pool bench finished")
	return report, nil
}

type reuseCounter struct {
	reused int
	next   pool.Observer
}

func (r *reuseCounter) InstanceCreated() {
	if r.next != nil {
		r.next.InstanceCreated()
	}
}

func (r *reuseCounter) InstanceAcquired(reused bool) {
	if reused {
		r.reused++
	}
	if r.next != nil {
		r.next.InstanceAcquired(reused)
	}
}

func (r *reuseCounter) InstanceReleased() {
	if r.next != nil {
		r.next.InstanceReleased()
	}
}
