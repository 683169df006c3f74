// Package codes implements a family of variable-length, prefix-free integer
// encodings (unary, Elias gamma, Elias delta, Elias zeta) over fixed-width bit
// windows, in both MSB-first and LSB-first packing orders.
//
// The package operates on in-memory bit windows rather than byte streams: a
// Window is a finite slice of up to 64 bits, and a Codeword is a standalone
// bit pattern with an explicit length. This makes every operation a pure
// function, which is what the table builder in the tables package relies on to
// enumerate all possible windows exhaustively.
//
// All families share the same capability set through the Code interface:
//
//	code := codes.Gamma{}
//	cw, _ := code.Encode(4, format.MSBFirst) // 00101, 5 bits
//	v, rest, _ := code.Decode(codes.NewWindow(cw.Bits, cw.Len), format.MSBFirst)
//
// Gamma is built compositionally on unary, delta on gamma, and zeta on unary
// plus minimal binary, mirroring the mathematical definitions.
//
// Decoding a window that is too short to contain a complete codeword fails
// with ErrEndOfWindow (missing terminator) or ErrInsufficientWindow (missing
// fixed field). Both indicate window truncation, not stream corruption;
// buffering discipline is the caller's concern.
package codes
