package domain

import "math"

type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// Quat is a unit quaternion describing an orientation.
type Quat struct {
	X float64
	Y float64
	Z float64
	W float64
}

func IdentityQuat() Quat {
	return Quat{W: 1}
}

// QuatFromEuler builds an orientation from rotations in degrees applied
// around Z, then X, then Y.
func QuatFromEuler(x, y, z float64) Quat {
	hx := x * math.Pi / 360
	hy := y * math.Pi / 360
	hz := z * math.Pi / 360

	sx, cx := math.Sin(hx), math.Cos(hx)
	sy, cy := math.Sin(hy), math.Cos(hy)
	sz, cz := math.Sin(hz), math.Cos(hz)

	return Quat{
		X: cy*sx*cz + sy*cx*sz,
		Y: sy*cx*cz - cy*sx*sz,
		Z: cy*cx*sz - sy*sx*cz,
		W: cy*cx*cz + sy*sx*sz,
	}
}

// Angle returns the angle in degrees between two orientations.
func (q Quat) Angle(other Quat) float64 {
	dot := q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
	dot = math.Min(math.Abs(dot), 1)
	return 2 * math.Acos(dot) * 180 / math.Pi
}

type Pose struct {
	Position Vec3
	Rotation Quat
}

func IdentityPose() Pose {
	return Pose{Rotation: IdentityQuat()}
}
