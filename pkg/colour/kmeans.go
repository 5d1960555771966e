package colour

import (
	"fmt"
	"image"
	"math"
	"math/rand"
)

// KMeansQuantizer implements colour quantization using k-means clustering
// with k-means++ initialization.
type KMeansQuantizer struct {
	maxIterations int
	convergence   float64
}

// NewKMeansQuantizer creates a new KMeansQuantizer with default settings.
func NewKMeansQuantizer() *KMeansQuantizer {
	return &KMeansQuantizer{
		maxIterations: 20,
		convergence:   2.0,
	}
}

// Quantize reduces the image to at most count colours. Returned weights
// are the relative cluster sizes.
func (q *KMeansQuantizer) Quantize(img image.Image, count, quality int) (*Palette, error) {
	if err := validateQuantizeArgs(img, count, quality); err != nil {
		return nil, err
	}

	pixels := samplePixels(img, quality)
	if len(pixels) == 0 {
		return nil, fmt.Errorf("no pixels found in image")
	}

	// When the image holds no more unique colours than requested,
	// clustering is pointless: count frequencies directly.
	unique, counts := uniqueColours(pixels)
	if count >= len(unique) {
		weights := make([]float64, len(unique))
		total := float64(len(pixels))
		for i, c := range unique {
			weights[i] = float64(counts[c]) / total
		}
		return NewPaletteWithWeights(unique, weights), nil
	}

	centroids, weights := q.kmeans(pixels, count)

	colors := make([]RGB, len(centroids))
	for i, c := range centroids {
		colors[i] = RGB{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B)}
	}

	return NewPaletteWithWeights(colors, weights), nil
}

// uniqueColours returns the distinct colours in extraction order along
// with their occurrence counts.
func uniqueColours(pixels []RGB) ([]RGB, map[RGB]int) {
	counts := make(map[RGB]int, len(pixels))
	unique := make([]RGB, 0)
	for _, p := range pixels {
		if counts[p] == 0 {
			unique = append(unique, p)
		}
		counts[p]++
	}
	return unique, counts
}

// point3D represents a point in 3D RGB colour space.
type point3D struct {
	R, G, B float64
}

// distance calculates the Euclidean distance between two points.
func (p point3D) distance(other point3D) float64 {
	dr := p.R - other.R
	dg := p.G - other.G
	db := p.B - other.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// kmeans performs k-means clustering on the pixel data.
// Returns centroids and their weights (relative cluster sizes).
func (q *KMeansQuantizer) kmeans(pixels []RGB, k int) ([]point3D, []float64) {
	points := make([]point3D, len(pixels))
	for i, c := range pixels {
		points[i] = point3D{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
	}

	centroids := q.initializeCentroids(points, k)
	assignments := make([]int, len(points))

	for iter := 0; iter < q.maxIterations; iter++ {
		changed := 0
		for i, point := range points {
			nearest := nearestCentroid(point, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}

		// Converged when under 1% of assignments moved.
		if float64(changed)/float64(len(points)) < 0.01 {
			break
		}

		newCentroids := recalculateCentroids(points, assignments, k)

		totalMovement := 0.0
		for i := range centroids {
			totalMovement += centroids[i].distance(newCentroids[i])
		}
		centroids = newCentroids

		if totalMovement/float64(k) < q.convergence {
			break
		}
	}

	weights := make([]float64, k)
	for _, assignment := range assignments {
		weights[assignment]++
	}
	total := float64(len(assignments))
	for i := range weights {
		weights[i] /= total
	}

	return centroids, weights
}

// initializeCentroids seeds centroids using the k-means++ scheme:
// each subsequent centroid is chosen with probability proportional to
// its squared distance from the nearest existing centroid.
func (q *KMeansQuantizer) initializeCentroids(points []point3D, k int) []point3D {
	if len(points) == 0 || k == 0 {
		return []point3D{}
	}

	centroids := make([]point3D, 0, k)
	centroids = append(centroids, points[rand.Intn(len(points))])

	for len(centroids) < k {
		distances := make([]float64, len(points))
		totalDistance := 0.0

		for i, point := range points {
			minDist := math.MaxFloat64
			for _, centroid := range centroids {
				if d := point.distance(centroid); d < minDist {
					minDist = d
				}
			}
			distances[i] = minDist * minDist
			totalDistance += distances[i]
		}

		if totalDistance == 0 {
			// Remaining points coincide with existing centroids; nudge a
			// duplicate so the loop can terminate.
			last := centroids[len(centroids)-1]
			centroids = append(centroids, point3D{R: last.R + 0.1, G: last.G + 0.1, B: last.B + 0.1})
			continue
		}

		target := rand.Float64() * totalDistance
		cumulative := 0.0
		for i, dist := range distances {
			cumulative += dist
			if cumulative >= target {
				centroids = append(centroids, points[i])
				break
			}
		}
	}

	return centroids
}

// nearestCentroid finds the index of the nearest centroid to a point.
func nearestCentroid(point point3D, centroids []point3D) int {
	minDist := math.MaxFloat64
	nearest := 0
	for i, centroid := range centroids {
		if d := point.distance(centroid); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}

// recalculateCentroids recalculates centroid positions as the mean of
// their assigned points. Empty clusters are reseeded randomly.
func recalculateCentroids(points []point3D, assignments []int, k int) []point3D {
	sums := make([]point3D, k)
	counts := make([]int, k)

	for i, point := range points {
		cluster := assignments[i]
		sums[cluster].R += point.R
		sums[cluster].G += point.G
		sums[cluster].B += point.B
		counts[cluster]++
	}

	centroids := make([]point3D, k)
	for i := 0; i < k; i++ {
		if counts[i] > 0 {
			centroids[i] = point3D{
				R: sums[i].R / float64(counts[i]),
				G: sums[i].G / float64(counts[i]),
				B: sums[i].B / float64(counts[i]),
			}
		} else {
			centroids[i] = points[rand.Intn(len(points))]
		}
	}

	return centroids
}
