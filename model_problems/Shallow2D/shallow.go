package Shallow2D

import "math"

const DefaultGravity = 9.8

/*
Shallow is the shallow water system with state U = (h, hu, hv), water height
and the two momenta:

	F(U) = (hu, hu^2/h + g h^2/2, hu hv/h)
	G(U) = (hv, hu hv/h, hv^2/h + g h^2/2)

The characteristic speeds in x are u and u +/- sqrt(gh), the wave speed
bound is |u| + sqrt(gh). The methods do not check h > 0.
*/
type Shallow struct {
	Gravity float64
}

func NewShallow(gravity float64) Shallow {
	if gravity == 0 {
		gravity = DefaultGravity
	}
	return Shallow{Gravity: gravity}
}

func (s Shallow) NumComponents() int { return 3 }

// ByteAlign matches a 32 byte vector register.
func (s Shallow) ByteAlign() int { return 32 }

func (s Shallow) Flux(F, G, U []float64) {
	var (
		h, hu, hv = U[0], U[1], U[2]
		p         = 0.5 * s.Gravity * h * h
	)
	F[0] = hu
	F[1] = hu*hu/h + p
	F[2] = hu * hv / h

	G[0] = hv
	G[1] = hu * hv / h
	G[2] = hv*hv/h + p
}

func (s Shallow) WaveSpeed(U []float64) (cx, cy float64) {
	var (
		h, hu, hv = U[0], U[1], U[2]
		root      = math.Sqrt(s.Gravity * h)
	)
	cx = math.Abs(hu/h) + root
	cy = math.Abs(hv/h) + root
	return
}
