// SPDX-License-Identifier: MIT

package symmetry

// labelOrder fixes the column order of the op-label census.
var labelOrder = [10]string{"-6", "-4", "-3", "m", "-1", "1", "2", "3", "4", "6"}

type pointGroupName struct {
	hm, schoenflies string
}

// pointGroupCensus maps a label census over distinct linear parts to the
// name of one of the 32 crystallographic point groups.
var pointGroupCensus = map[[10]int]pointGroupName{
	{0, 0, 0, 0, 0, 1, 0, 0, 0, 0}: {"1", "C1"},
	{0, 0, 0, 0, 1, 1, 0, 0, 0, 0}: {"-1", "Ci"},
	{0, 0, 0, 0, 0, 1, 1, 0, 0, 0}: {"2", "C2"},
	{0, 0, 0, 1, 0, 1, 0, 0, 0, 0}: {"m", "Cs"},
	{0, 0, 0, 1, 1, 1, 1, 0, 0, 0}: {"2/m", "C2h"},
	{0, 0, 0, 0, 0, 1, 3, 0, 0, 0}: {"222", "D2"},
	{0, 0, 0, 2, 0, 1, 1, 0, 0, 0}: {"mm2", "C2v"},
	{0, 0, 0, 3, 1, 1, 3, 0, 0, 0}: {"mmm", "D2h"},
	{0, 0, 0, 0, 0, 1, 1, 0, 2, 0}: {"4", "C4"},
	{0, 2, 0, 0, 0, 1, 1, 0, 0, 0}: {"-4", "S4"},
	{0, 2, 0, 1, 1, 1, 1, 0, 2, 0}: {"4/m", "C4h"},
	{0, 0, 0, 0, 0, 1, 5, 0, 2, 0}: {"422", "D4"},
	{0, 0, 0, 4, 0, 1, 1, 0, 2, 0}: {"4mm", "C4v"},
	{0, 2, 0, 2, 0, 1, 3, 0, 0, 0}: {"-42m", "D2d"},
	{0, 2, 0, 5, 1, 1, 5, 0, 2, 0}: {"4/mmm", "D4h"},
	{0, 0, 0, 0, 0, 1, 0, 2, 0, 0}: {"3", "C3"},
	{0, 0, 2, 0, 1, 1, 0, 2, 0, 0}: {"-3", "C3i"},
	{0, 0, 0, 0, 0, 1, 3, 2, 0, 0}: {"32", "D3"},
	{0, 0, 0, 3, 0, 1, 0, 2, 0, 0}: {"3m", "C3v"},
	{0, 0, 2, 3, 1, 1, 3, 2, 0, 0}: {"-3m", "D3d"},
	{0, 0, 0, 0, 0, 1, 1, 2, 0, 2}: {"6", "C6"},
	{2, 0, 0, 1, 0, 1, 0, 2, 0, 0}: {"-6", "C3h"},
	{2, 0, 2, 1, 1, 1, 1, 2, 0, 2}: {"6/m", "C6h"},
	{0, 0, 0, 0, 0, 1, 7, 2, 0, 2}: {"622", "D6"},
	{0, 0, 0, 6, 0, 1, 1, 2, 0, 2}: {"6mm", "C6v"},
	{2, 0, 0, 4, 0, 1, 3, 2, 0, 0}: {"-6m2", "D3h"},
	{2, 0, 2, 7, 1, 1, 7, 2, 0, 2}: {"6/mmm", "D6h"},
	{0, 0, 0, 0, 0, 1, 3, 8, 0, 0}: {"23", "T"},
	{0, 0, 8, 3, 1, 1, 3, 8, 0, 0}: {"m-3", "Th"},
	{0, 0, 0, 0, 0, 1, 9, 8, 6, 0}: {"432", "O"},
	{0, 6, 0, 6, 0, 1, 3, 8, 0, 0}: {"-43m", "Td"},
	{0, 6, 8, 9, 1, 1, 9, 8, 6, 0}: {"m-3m", "Oh"},
}

// UnknownName is returned for label censuses outside the 32 point groups.
const UnknownName = "unknown"

// Census counts op labels over the distinct linear parts of g, in the
// column order -6, -4, -3, m, -1, 1, 2, 3, 4, 6.
func (g *Group) Census() [10]int {
	var c [10]int
	pg := g.PointGroup()
	for _, op := range pg.ops {
		for k, l := range labelOrder {
			if op.label == l {
				c[k]++
				break
			}
		}
	}
	return c
}

// Name returns the Hermann-Mauguin symbol of the point group of g.
func (g *Group) Name() string {
	if n, ok := pointGroupCensus[g.Census()]; ok {
		return n.hm
	}
	return UnknownName
}

// Schoenflies returns the Schoenflies symbol of the point group of g.
func (g *Group) Schoenflies() string {
	if n, ok := pointGroupCensus[g.Census()]; ok {
		return n.schoenflies
	}
	return UnknownName
}
