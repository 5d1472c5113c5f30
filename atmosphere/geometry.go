package atmosphere

import (
	"math"

	"github.com/mattyatea/horizon-sky/vectors"
)

// IntersectSphere calculates the intersection of a ray (origin + t*dir, dir
// unit length) with a sphere of the given radius centered at the coordinate
// origin. It returns the near root, or the far root when the near one is
// behind the origin (ray starts inside the sphere). ok is false when the ray
// misses the sphere entirely.
func IntersectSphere(origin, dir vectors.Vec3, radius float64) (t float64, ok bool) {
	b := origin.Dot(dir)
	c := origin.Dot(origin) - radius*radius

	disc := b*b - c
	if disc < 0 {
		return 0, false
	}

	sqrtDisc := math.Sqrt(disc)
	t = -b - sqrtDisc
	if t < 0 {
		t = -b + sqrtDisc
	}
	return t, true
}
