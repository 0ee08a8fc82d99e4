package generators

var (
	K = 1 << 10
	M = 1 << 20
)
