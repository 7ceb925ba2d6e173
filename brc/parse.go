package brc

// Weighted sums of '0' bytes for the two magnitude widths; subtracting
// them turns a weighted ASCII digit sum into the value in one step.
// 48 is the ASCII code for '0'.
const (
	TWO_DIGIT_ZEROS   = 480 + 48
	THREE_DIGIT_ZEROS = 4800 + 480 + 48
)

// parseTenths reads the temperature that follows the ';' separator and
// returns it in tenths of a degree together with the number of bytes
// consumed, trailing newline included. The format allows exactly four
// shapes (d.d, -d.d, dd.d, -dd.d), told apart by a four byte lookahead,
// so magnitudes cap at 99.9 either sign. Input is trusted: there is no
// bounds or digit validation, and feeding malformed records here is
// undefined behavior.
func parseTenths(b []byte) (int32, int) {
	b0, b1, b2, b3 := b[0], b[1], b[2], b[3]
	if b1 == '.' { // d.d, b3 is the newline
		return int32(b0)*10 + int32(b2) - TWO_DIGIT_ZEROS, 4
	}
	if b3 == '.' { // -dd.d
		return -(int32(b1)*100 + int32(b2)*10 + int32(b[4]) - THREE_DIGIT_ZEROS), 6
	}
	if b0 == '-' { // -d.d
		return -(int32(b1)*10 + int32(b3) - TWO_DIGIT_ZEROS), 5
	}
	// dd.d
	return int32(b0)*100 + int32(b1)*10 + int32(b3) - THREE_DIGIT_ZEROS, 5
}

// parseDigits converts a full temperature token (no newline) to tenths
// by walking its bytes, skipping the '.' and applying the sign at the
// end. Slower than parseTenths but shape-agnostic; the readable solvers
// use it.
func parseDigits(b []byte) int32 {
	var v int32
	for _, c := range b {
		if c >= '0' && c <= '9' {
			v = v*10 + int32(c-'0')
		}
	}
	if b[0] == '-' {
		return -v
	}
	return v
}
