// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sets

// Union returns a new set holding every distinct element of s and of each
// extra source. The output kind follows s: its Empty constructor when it
// has one, an insertion-ordered Set otherwise, so sequence inputs keep
// first-occurrence order. With no extra sources it returns a copy of s.
func Union[E comparable](s Collection[E], more ...Collection[E]) SetLike[E] {
	hint, _ := knownLen(s)
	dst := UnionInto(emptyLike(s, hint), s)
	return UnionInto(dst, more...)
}

// UnionInto inserts every element of every src into dst and returns dst.
// A src with known length reserves capacity up front, and insertion stops
// once dst holds as many elements as the element type can distinguish. A
// src that is dst itself is skipped.
func UnionInto[E comparable](dst SetLike[E], srcs ...Collection[E]) SetLike[E] {
	bound := MaxDistinct[E]()
	for _, src := range srcs {
		if identical(dst, src) {
			continue
		}
		if uint64(dst.Len()) >= bound {
			break
		}
		if n, ok := knownLen(src); ok {
			grow(dst, dst.Len()+n)
		}
		for e := range src.All() {
			dst.Add(e)
			if uint64(dst.Len()) >= bound {
				break
			}
		}
	}
	return dst
}
