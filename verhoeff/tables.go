package verhoeff

// The three canonical Verhoeff lookup tables. They are pure data,
// fixed at definition time and consulted by index only; every
// error-detection guarantee of the algorithm rests on these exact
// values, so they must never be edited or derived at runtime.
// tables_test.go locks their structural invariants.

// dihedralTable is the multiplication table d(j,k) of the dihedral
// group D5 (order 10). Each row is a permutation of 0–9 (Latin
// square), which gives the group law the cancellation property the
// detection guarantees depend on. Entry [0][k] == k, so 0 is the
// group identity.
var dihedralTable = [10][10]uint8{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
	{1, 2, 3, 4, 0, 6, 7, 8, 9, 5},
	{2, 3, 4, 0, 1, 7, 8, 9, 5, 6},
	{3, 4, 0, 1, 2, 8, 9, 5, 6, 7},
	{4, 0, 1, 2, 3, 9, 5, 6, 7, 8},
	{5, 9, 8, 7, 6, 0, 4, 3, 2, 1},
	{6, 5, 9, 8, 7, 1, 0, 4, 3, 2},
	{7, 6, 5, 9, 8, 2, 1, 0, 4, 3},
	{8, 7, 6, 5, 9, 3, 2, 1, 0, 4},
	{9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
}

// permutationTable holds p(pos,num): row i is the permutation applied
// to a digit whose reverse position is congruent to i mod 8. Row 0 is
// the identity; row i is row 1 composed with itself i times. Cycling
// through 8 distinct permutations is what defeats transposition
// errors that a fixed weighting scheme would miss.
var permutationTable = [8][10]uint8{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
	{1, 5, 7, 6, 2, 8, 3, 0, 9, 4},
	{5, 8, 0, 3, 7, 9, 6, 1, 4, 2},
	{8, 9, 1, 6, 0, 4, 3, 5, 2, 7},
	{9, 4, 5, 3, 1, 2, 6, 8, 7, 0},
	{4, 2, 8, 6, 5, 7, 3, 9, 0, 1},
	{2, 7, 9, 3, 8, 0, 6, 4, 1, 5},
	{7, 0, 4, 6, 9, 1, 3, 2, 5, 8},
}

// inverseTable maps each digit to its inverse under the group
// operation: dihedralTable[d][inverseTable[d]] == 0 for every d.
var inverseTable = [10]uint8{0, 4, 3, 2, 1, 5, 6, 7, 8, 9}
