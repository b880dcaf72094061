package ports

type InstancePool[T any] interface {
	Acquire() T
	Release(instance T)
}
