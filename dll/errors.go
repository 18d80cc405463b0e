package dll

import "github.com/tychoish/linksort/ers"

// ErrOutOfRange is returned by the indexed access operations when
// the index is negative or not less than the length of the list.
const ErrOutOfRange ers.Error = ers.Error("index out of range")

// ErrInvalidDereference is the root of the panic raised when reading
// the value of an iterator that references one of the list's
// sentinels, or no node at all.
const ErrInvalidDereference ers.Error = ers.Error("dereference of sentinel or invalid iterator")

// ErrUninitialized is the content of the panic raised by operations
// on a nil list.
const ErrUninitialized ers.Error = ers.Error("uninitialized list")
