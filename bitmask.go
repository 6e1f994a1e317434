package reks

import "math/bits"

// bitmask256 represents a set of up to 256 component IDs. Every entity record
// carries one, and a query compares its requirement mask against it to decide
// whether the entity owns every requested component type.
type bitmask256 [4]uint64

// set enables the bit corresponding to the given component ID.
func (m *bitmask256) set(id ComponentID) {
	i := id >> 6 // (id / 64) to find the uint64 index
	o := id & 63 // (id % 64) to find the bit offset
	m[i] |= uint64(1) << uint64(o)
}

// contains reports whether every bit set in sub is also set in m, i.e. whether
// an entity owning m has at least the component types in sub.
func (m bitmask256) contains(sub bitmask256) bool {
	return (m[0]&sub[0]) == sub[0] &&
		(m[1]&sub[1]) == sub[1] &&
		(m[2]&sub[2]) == sub[2] &&
		(m[3]&sub[3]) == sub[3]
}

// containsBit checks if a specific bit is set in the mask.
func (m bitmask256) containsBit(id ComponentID) bool {
	i := id >> 6
	o := id & 63
	return (m[i] & (uint64(1) << uint64(o))) != 0
}

// count returns the number of component IDs in the mask.
func (m bitmask256) count() int {
	return bits.OnesCount64(m[0]) + bits.OnesCount64(m[1]) +
		bits.OnesCount64(m[2]) + bits.OnesCount64(m[3])
}
