package geom

// Simplify reduces a polyline/ring with Ramer-Douglas-Peucker after a
// radial-distance pre-filter. Distances are compared squared throughout,
// so tolerance is interpreted in coordinate units.
//
// Rings of three or fewer points are returned as-is: the input slice
// itself, not a copy. Callers must not rely on that identity.
// The first and last points always survive simplification.
func Simplify(points []Point, tolerance float64) []Point {
	if len(points) <= 3 || tolerance <= 0 {
		return points
	}
	tolSq := tolerance * tolerance
	filtered := radialFilter(points, tolSq)
	if len(filtered) <= 2 {
		return filtered
	}
	keep := make([]bool, len(filtered))
	keep[0], keep[len(filtered)-1] = true, true
	douglasPeucker(filtered, 0, len(filtered)-1, tolSq, keep)

	out := make([]Point, 0, len(filtered))
	for i, k := range keep {
		if k {
			out = append(out, filtered[i])
		}
	}
	return out
}

// radialFilter drops consecutive points closer than sqrt(tolSq) to the
// last kept point. The final point is always retained, replacing its
// predecessor when the two collapse together.
func radialFilter(points []Point, tolSq float64) []Point {
	out := make([]Point, 0, len(points))
	out = append(out, points[0])
	last := points[0]
	for _, p := range points[1 : len(points)-1] {
		if distSq(p, last) >= tolSq {
			out = append(out, p)
			last = p
		}
	}
	end := points[len(points)-1]
	if len(out) > 1 && distSq(end, last) < tolSq {
		out[len(out)-1] = end
	} else {
		out = append(out, end)
	}
	return out
}

// douglasPeucker marks survivors between endpoints lo and hi.
func douglasPeucker(points []Point, lo, hi int, tolSq float64, keep []bool) {
	if hi <= lo+1 {
		return
	}
	maxSq := 0.0
	maxIdx := lo
	for i := lo + 1; i < hi; i++ {
		if d := perpDistSq(points[i], points[lo], points[hi]); d > maxSq {
			maxSq = d
			maxIdx = i
		}
	}
	if maxSq <= tolSq {
		return
	}
	keep[maxIdx] = true
	douglasPeucker(points, lo, maxIdx, tolSq, keep)
	douglasPeucker(points, maxIdx, hi, tolSq, keep)
}
