package domain

// segment is a piece of text with one attribute value.
type segment[A comparable] struct {
	text  string
	attrs A
}

// segments is the mutable run list shared by the attributed text builders.
// Adjacent segments with equal attributes are always merged.
type segments[A comparable] []segment[A]

func (s segments[A]) add(text string, attrs A) segments[A] {
	if text == "" {
		return s
	}
	if n := len(s); n > 0 && s[n-1].attrs == attrs {
		s[n-1].text += text
		return s
	}
	return append(s, segment[A]{text: text, attrs: attrs})
}

// update applies fn to the attributes covering [start, end), splitting
// segments at the boundaries. Offsets must fall on rune boundaries.
func (s segments[A]) update(start, end int, fn func(*A)) segments[A] {
	if start >= end {
		return s
	}
	out := make(segments[A], 0, len(s)+2)
	pos := 0
	for _, seg := range s {
		segStart, segEnd := pos, pos+len(seg.text)
		pos = segEnd
		if segEnd <= start || segStart >= end {
			out = out.add(seg.text, seg.attrs)
			continue
		}
		lo := max(start, segStart) - segStart
		hi := min(end, segEnd) - segStart
		changed := seg.attrs
		fn(&changed)
		out = out.add(seg.text[:lo], seg.attrs)
		out = out.add(seg.text[lo:hi], changed)
		out = out.add(seg.text[hi:], seg.attrs)
	}
	return out
}

func (s segments[A]) len() int {
	n := 0
	for _, seg := range s {
		n += len(seg.text)
	}
	return n
}
