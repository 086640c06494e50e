package boardfile

import "sort"

// sortFile puts a captured layout into a stable order so FromBoard output
// does not depend on map iteration order.
func sortFile(f *File) {
	sort.Slice(f.Hexes, func(i, j int) bool {
		if f.Hexes[i].Q != f.Hexes[j].Q {
			return f.Hexes[i].Q > f.Hexes[j].Q
		}
		return f.Hexes[i].R < f.Hexes[j].R
	})
	sort.Slice(f.Harbors, func(i, j int) bool {
		a, b := f.Harbors[i].Corners, f.Harbors[j].Corners
		if a[0].Q != b[0].Q {
			return a[0].Q > b[0].Q
		}
		if a[0].R != b[0].R {
			return a[0].R < b[0].R
		}
		if a[1].Q != b[1].Q {
			return a[1].Q > b[1].Q
		}
		return a[1].R < b[1].R
	})
	sort.Slice(f.Buildings, func(i, j int) bool {
		a, b := f.Buildings[i], f.Buildings[j]
		if a.Player != b.Player {
			return a.Player < b.Player
		}
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		ac, bc := buildingSortKey(a), buildingSortKey(b)
		for k := range ac {
			if ac[k] != bc[k] {
				return ac[k] < bc[k]
			}
		}
		return false
	})
}

func buildingSortKey(b BuildingDef) [4]int {
	if b.Corner != nil {
		return [4]int{b.Corner.Q, b.Corner.R, 0, 0}
	}
	if b.Edge != nil {
		return [4]int{b.Edge[0].Q, b.Edge[0].R, b.Edge[1].Q, b.Edge[1].R}
	}
	return [4]int{}
}
