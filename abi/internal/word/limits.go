package word

const (
	MaxDepth       = 64      // nesting of arrays, tuples and structs
	MaxBytesLength = 1 << 26 // 64 MB max bytes/string payload
	MaxArrayLength = 1 << 20 // 1M max elements
)
