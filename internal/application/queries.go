package application

import "github.com/bnema/gamekit/internal/domain"

type ProfileStatus struct {
	Profile  domain.Profile
	Settings domain.Settings
	FileName string
}

type PoolBenchReport struct {
	Warm     int
	Spawned  int
	Recycled int
	Reused   int
	Idle     int
	Size     int
	// Container names the node idle instances are parked under.
	Container string
	Parked    int
	Active    int
}
