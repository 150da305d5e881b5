package probemap

type Stats struct {
	Size       int
	Capacity   int
	LoadFactor float64
}
