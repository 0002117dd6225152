package math

import "errors"

// ErrIndexOutOfRange is the panic value used when a vector component is
// addressed with an index outside its dimension. It signals a programming
// error in the caller and is never returned.
var ErrIndexOutOfRange = errors.New("vector index out of range")
