package covergen

import "testing"

func TestPaletteAt_AllIndexes(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		p := PaletteAt(i)
		if p.Name == "" {
			t.Errorf("palette %d has no name", i)
		}
		if seen[p.Name] {
			t.Errorf("palette name %q duplicated", p.Name)
		}
		seen[p.Name] = true

		if len(p.Background) < 2 {
			t.Errorf("palette %d (%s): %d background stops, want >= 2", i, p.Name, len(p.Background))
		}
		for j, c := range p.Accents {
			if c.A != 1 {
				t.Errorf("palette %d (%s): accent %d not opaque", i, p.Name, j)
			}
		}
	}
}

func TestPaletteAt_HashModAlwaysInRange(t *testing.T) {
	hashes := []uint32{0, 9, 10, 99, 4294967295, 92862707}
	for _, h := range hashes {
		idx := int(h % 10)
		if idx < 0 || idx > 9 {
			t.Fatalf("hash %d: index %d out of range", h, idx)
		}
		_ = PaletteAt(idx) // must not panic
	}
}
