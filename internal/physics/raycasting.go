package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Ray represents a ray in 3D space
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// RayIntersectSphere tests if a ray intersects a sphere
// Returns: (intersected, distance, intersection point)
func RayIntersectSphere(ray Ray, sphereCenter mgl32.Vec3, radius float32) (bool, float32, mgl32.Vec3) {
	// Calculate vector from ray origin to sphere center
	oc := ray.Origin.Sub(sphereCenter)

	// Calculate coefficients for quadratic equation
	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 || a == 0 {
		return false, 0, mgl32.Vec3{}
	}

	sqrtDisc := float32(math.Sqrt(float64(discriminant)))
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)

	// Return the closest intersection (smallest non-negative t)
	var t float32
	switch {
	case t1 >= 0:
		t = t1
	case t2 >= 0:
		t = t2
	default:
		// Both intersections are behind the ray origin
		return false, 0, mgl32.Vec3{}
	}

	return true, t, ray.At(t)
}

// RayIntersectAABB tests a ray against an axis-aligned box using the slab method.
// Returns: (intersected, distance, intersection point)
func RayIntersectAABB(ray Ray, lo, hi mgl32.Vec3) (bool, float32, mgl32.Vec3) {
	tmin := float32(math.Inf(-1))
	tmax := float32(math.Inf(1))

	for axis := 0; axis < 3; axis++ {
		o, d := ray.Origin[axis], ray.Direction[axis]
		if d == 0 {
			// Parallel to this slab: must already be between its planes
			if o < lo[axis] || o > hi[axis] {
				return false, 0, mgl32.Vec3{}
			}
			continue
		}

		t1 := (lo[axis] - o) / d
		t2 := (hi[axis] - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return false, 0, mgl32.Vec3{}
		}
	}

	if tmax < 0 {
		return false, 0, mgl32.Vec3{}
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	return true, t, ray.At(t)
}

func pointInSphere(p, center mgl32.Vec3, radius float32) bool {
	d := p.Sub(center)
	return d.Dot(d) <= radius*radius
}

func pointInAABB(p, lo, hi mgl32.Vec3) bool {
	for axis := 0; axis < 3; axis++ {
		if p[axis] < lo[axis] || p[axis] > hi[axis] {
			return false
		}
	}
	return true
}

func finite(v mgl32.Vec3) bool {
	for _, c := range v {
		f := float64(c)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
