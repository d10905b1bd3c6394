package core

import "math"

// Translation moves points by (x, y, z). Vectors are unaffected.
func Translation(x, y, z float64) Matrix {
	return Identity().Set(0, 3, x).Set(1, 3, y).Set(2, 3, z)
}

// Scaling scales each axis independently
func Scaling(x, y, z float64) Matrix {
	return Identity().Set(0, 0, x).Set(1, 1, y).Set(2, 2, z)
}

// RotationX rotates around the x axis by r radians
func RotationX(r float64) Matrix {
	sin, cos := math.Sincos(r)
	return Identity().Set(1, 1, cos).Set(1, 2, -sin).Set(2, 1, sin).Set(2, 2, cos)
}

// RotationY rotates around the y axis by r radians
func RotationY(r float64) Matrix {
	sin, cos := math.Sincos(r)
	return Identity().Set(0, 0, cos).Set(0, 2, sin).Set(2, 0, -sin).Set(2, 2, cos)
}

// RotationZ rotates around the z axis by r radians
func RotationZ(r float64) Matrix {
	sin, cos := math.Sincos(r)
	return Identity().Set(0, 0, cos).Set(0, 1, -sin).Set(1, 0, sin).Set(1, 1, cos)
}

// Shearing moves each component in proportion to the other two
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	return Identity().
		Set(0, 1, xy).Set(0, 2, xz).
		Set(1, 0, yx).Set(1, 2, yz).
		Set(2, 0, zx).Set(2, 1, zy)
}

// ViewTransform orients the world relative to an eye at from looking at to
func ViewTransform(from, to, up Tuple) Matrix {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := NewMatrix(
		[]float64{left.X, left.Y, left.Z, 0},
		[]float64{trueUp.X, trueUp.Y, trueUp.Z, 0},
		[]float64{-forward.X, -forward.Y, -forward.Z, 0},
		[]float64{0, 0, 0, 1},
	)
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z))
}
