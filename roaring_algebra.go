// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// And intersects rb with other in place.
func (rb *Bitmap) And(other *Bitmap) { rb.and(other) }

// Or unions rb with other in place.
func (rb *Bitmap) Or(other *Bitmap) { rb.or(other) }

// AndNot removes from rb every member also present in other, in place.
func (rb *Bitmap) AndNot(other *Bitmap) { rb.andNot(other) }

// Xor replaces rb with its symmetric difference with other, in place.
func (rb *Bitmap) Xor(other *Bitmap) { rb.xor(other) }

// Jaccard returns the Jaccard distance 1 - |A ∩ B| / |A ∪ B| between rb and
// other. Two empty sets are conventionally distance 1 apart, per spec.
func (rb *Bitmap) Jaccard(other *Bitmap) float64 { return jaccardDist(rb, other) }

// Union returns a new bitmap holding every member of a or b, leaving both
// inputs untouched.
func Union(a, b *Bitmap) *Bitmap {
	out := a.Clone()
	out.Or(b)
	return out
}

// Intersection returns a new bitmap holding every member present in both a
// and b, leaving both inputs untouched.
func Intersection(a, b *Bitmap) *Bitmap {
	out := a.Clone()
	out.And(b)
	return out
}

// Difference returns a new bitmap holding every member of a that is absent
// from b, leaving both inputs untouched.
func Difference(a, b *Bitmap) *Bitmap {
	out := a.Clone()
	out.AndNot(b)
	return out
}

// SymmetricDifference returns a new bitmap holding every member present in
// exactly one of a or b, leaving both inputs untouched.
func SymmetricDifference(a, b *Bitmap) *Bitmap {
	out := a.Clone()
	out.Xor(b)
	return out
}
