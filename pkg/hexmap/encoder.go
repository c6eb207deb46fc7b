// pkg/hexmap/encoder.go
package hexmap

// Encode packs a cell into a single key: Q in the high 32 bits and the
// bit pattern of R in the low 32 bits. Keys carry no ordering meaning.
func Encode(h Hexagon) int64 {
	return int64(int32(h.Q))<<32 | int64(uint32(int32(h.R)))
}

// Decode is the inverse of Encode.
func Decode(id int64) Hexagon {
	return Hexagon{
		Q: int(int32(id >> 32)),
		R: int(int32(id)),
	}
}
