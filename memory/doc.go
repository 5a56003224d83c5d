// Package memory models target memory for call-frame unwinding: the
// fixed-width register value family, byte-order selection, and a
// bounds-checked view over a raw memory image.
package memory
