package pbwire

// ZigZag32 maps a signed 32-bit integer onto an unsigned one so that values
// of small magnitude stay small: 0→0, -1→1, 1→2, -2→3, ...
//
// The right shift is arithmetic: v>>31 is all ones for negative v.
func ZigZag32(v int32) uint32 { return uint32(v<<1) ^ uint32(v>>31) }

// ZigZag64 is the 64-bit analogue of ZigZag32.
func ZigZag64(v int64) uint64 { return uint64(v<<1) ^ uint64(v>>63) }

// UnZigZag32 inverts ZigZag32.
func UnZigZag32(n uint32) int32 { return int32(n>>1) ^ -int32(n&1) }

// UnZigZag64 inverts ZigZag64.
func UnZigZag64(n uint64) int64 { return int64(n>>1) ^ -int64(n&1) }
