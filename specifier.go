package ffmt

import "sync/atomic"
import "sync"

// Handler renders one directive given its parsed State. It must not
// retain the State past its own return — the driver reuses the backing
// storage for the next directive.
type Handler func(st *State)

const tableSize = 128

type handlerTable [tableSize]Handler

// specifierTable is process-wide and read on every directive dispatch
// without locking: formatting only ever does an atomic load, so
// concurrent Vfctprintf calls never contend with each other.
// RegisterSpecifier takes specifierMu to guard the rare mutation path —
// copy the current table, mutate the copy, swap the pointer — rather
// than locking the hot read path, reserving synchronization for a
// state transition expected to be rare.
var (
	specifierMu    sync.Mutex
	specifierTable atomic.Pointer[handlerTable]
)

func init() {
	t := &handlerTable{}
	installBuiltins(t)
	specifierTable.Store(t)
}

// RegisterSpecifier installs h for specifier byte b, replacing any
// existing entry including a built-in. b must be printable ASCII
// (0x21-0x7E) and not a decimal digit; any other byte is rejected and
// RegisterSpecifier returns false without touching the table.
//
// Registering a byte that also doubles as a flag, size modifier, or the
// '.' precision separator is accepted here but its interaction with the
// directive parser is left undefined, matching the engine it
// reimplements. The parser consumes those bytes in their flag/size-
// modifier role wherever that role applies, so such a handler is reached
// only when the byte comes after the part of the directive that would
// otherwise claim it (for example the 'l' in "%hl" or the '-' in "%5-").
func RegisterSpecifier(b byte, h Handler) bool {
	if !admissibleSpecifier(b) {
		return false
	}
	specifierMu.Lock()
	defer specifierMu.Unlock()
	cur := specifierTable.Load()
	next := *cur
	next[b] = h
	specifierTable.Store(&next)
	return true
}

func admissibleSpecifier(b byte) bool {
	if b <= 0x20 || b > 0x7E {
		return false
	}
	if b >= '0' && b <= '9' {
		return false
	}
	return true
}

func lookupSpecifier(b byte) Handler {
	if int(b) >= tableSize {
		return nil
	}
	t := specifierTable.Load()
	return t[b]
}
