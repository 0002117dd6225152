package core

import "fmt"

// IdentifierPool hands out small integer ids, reusing released ones before
// growing. The zero value is ready to use.
type IdentifierPool struct {
	owners []interface{}
}

// Acquire returns the lowest free id and records owner against it.
func (p *IdentifierPool) Acquire(owner interface{}) uint32 {
	for i, o := range p.owners {
		// Existing free spot. Take it.
		if o == nil {
			p.owners[i] = owner
			return uint32(i)
		}
	}
	// No free slot, the new id is the old length.
	p.owners = append(p.owners, owner)
	return uint32(len(p.owners) - 1)
}

// Release frees id for reuse.
func (p *IdentifierPool) Release(id uint32) error {
	if int(id) >= len(p.owners) || p.owners[id] == nil {
		return fmt.Errorf("%w: id %d was not acquired", ErrIndexOutOfRange, id)
	}
	p.owners[id] = nil
	return nil
}

// Owner returns what holds id, or nil.
func (p *IdentifierPool) Owner(id uint32) interface{} {
	if int(id) >= len(p.owners) {
		return nil
	}
	return p.owners[id]
}
