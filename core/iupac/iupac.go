// core/iupac/iupac.go
package iupac

/* -------------------------- IUPAC lookup table -------------------------- */

var mask [256]byte // bit0=A bit1=C bit2=G bit3=T

// choices[c] lists the concrete bases c may stand for, in A,C,G,T order.
// Bytes outside the IUPAC alphabet map to themselves.
var choices [256][]byte

var bases = [4]byte{'A', 'C', 'G', 'T'}

func init() {
	set := func(c byte, bits byte) { mask[c] = bits }
	set('A', 1)       // 0001
	set('C', 2)       // 0010
	set('G', 4)       // 0100
	set('T', 8)       // 1000
	set('R', 1|4)     // A/G
	set('Y', 2|8)     // C/T
	set('S', 2|4)     // C/G
	set('W', 1|8)     // A/T
	set('K', 4|8)     // G/T
	set('M', 1|2)     // A/C
	set('B', 2|4|8)   // C/G/T
	set('D', 1|4|8)   // A/G/T
	set('H', 1|2|8)   // A/C/T
	set('V', 1|2|4)   // A/C/G
	set('N', 1|2|4|8) // any

	for c := 0; c < 256; c++ {
		m := mask[c]
		if m == 0 {
			choices[c] = []byte{byte(c)}
			continue
		}
		for bit, b := range bases {
			if m&(1<<bit) != 0 {
				choices[c] = append(choices[c], b)
			}
		}
	}
}

// IsBase reports whether b is one of the concrete bases A, C, G or T.
func IsBase(b byte) bool {
	return b == 'A' || b == 'C' || b == 'G' || b == 'T'
}

// IsAmbiguous reports whether b is one of R Y S W K M B D H V N.
func IsAmbiguous(b byte) bool {
	return mask[b] != 0 && !IsBase(b)
}

// Choices returns the concrete bases b may represent. The returned slice
// is shared; callers must not modify it.
func Choices(b byte) []byte { return choices[b] }

/* ------------------------------- Expand --------------------------------- */

// Expand returns every concrete triplet the (possibly degenerate) triplet can
// represent. The cross-product runs over at most three choice sets, so the
// result holds between 1 and 64 distinct entries, ordered A<C<G<T per position.
// Unambiguous positions stay fixed; bytes outside the IUPAC alphabet are kept
// verbatim. A string that is not exactly three bytes long expands to nothing.
func Expand(triplet string) []string {
	if len(triplet) != 3 {
		return nil
	}
	var sets [3][]byte
	total := 1
	for i := range sets {
		sets[i] = choices[triplet[i]]
		total *= len(sets[i])
	}

	out := make([]string, 0, total)
	var buf [3]byte
	for _, a := range sets[0] {
		buf[0] = a
		for _, b := range sets[1] {
			buf[1] = b
			for _, c := range sets[2] {
				buf[2] = c
				out = append(out, string(buf[:]))
			}
		}
	}
	return out
}

// Resolve tries to rescue an observed triplet against an ordered candidate
// list. The first candidate (in list order) that is a member of Expand(observed)
// wins. ok is false when no candidate is representable by the observed triplet.
func Resolve(observed string, candidates []string) (codon string, ok bool) {
	expanded := Expand(observed)
	if len(expanded) == 0 {
		return "", false
	}
	set := make(map[string]struct{}, len(expanded))
	for _, t := range expanded {
		set[t] = struct{}{}
	}
	for _, c := range candidates {
		if _, hit := set[c]; hit {
			return c, true
		}
	}
	return "", false
}
