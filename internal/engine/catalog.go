package engine

// Kind identifies one of the seven canonical pieces.
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// KindCount is the number of pieces in the catalog.
const KindCount = 7

// String returns the single-letter piece name.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "?"
	}
}

// ColorID tags a filled cell with the color of the piece that filled it.
type ColorID uint8

// ColorEmpty is the sentinel for an empty cell. It never identifies a piece.
const ColorEmpty ColorID = 0

// Piece colors, one per kind.
const (
	ColorCyan ColorID = iota + 1
	ColorYellow
	ColorPurple
	ColorRed
	ColorGreen
	ColorMagenta
	ColorOrange
)

// Valid reports whether c is one of the catalog piece colors.
func (c ColorID) Valid() bool {
	return c >= ColorCyan && c <= ColorOrange
}

// Entry is one catalog item: a piece kind with its spawn shape and color.
type Entry struct {
	Kind  Kind
	Shape Shape
	Color ColorID
}

var catalog = [KindCount]Entry{
	{Kind: KindI, Color: ColorCyan, Shape: NewShape([][]int{{1, 1, 1, 1}})},
	{Kind: KindO, Color: ColorYellow, Shape: NewShape([][]int{{1, 1}, {1, 1}})},
	{Kind: KindT, Color: ColorPurple, Shape: NewShape([][]int{{0, 1, 0}, {1, 1, 1}})},
	{Kind: KindS, Color: ColorRed, Shape: NewShape([][]int{{0, 1, 1}, {1, 1, 0}})},
	{Kind: KindZ, Color: ColorGreen, Shape: NewShape([][]int{{1, 1, 0}, {0, 1, 1}})},
	{Kind: KindJ, Color: ColorMagenta, Shape: NewShape([][]int{{1, 0, 0}, {1, 1, 1}})},
	{Kind: KindL, Color: ColorOrange, Shape: NewShape([][]int{{0, 0, 1}, {1, 1, 1}})},
}

// Shapes returns the catalog entries in canonical order.
func Shapes() []Entry {
	out := make([]Entry, KindCount)
	copy(out, catalog[:])
	return out
}

// Picker draws a uniform integer in [0, n). *rand.Rand satisfies it.
type Picker interface {
	Intn(n int) int
}

// Catalog hands out random pieces.
type Catalog struct {
	picker Picker
}

// NewCatalog creates a catalog drawing from the given picker.
func NewCatalog(p Picker) *Catalog {
	return &Catalog{picker: p}
}

// RandomShape returns a uniformly chosen catalog entry.
// Consecutive calls may return the same entry.
func (c *Catalog) RandomShape() Entry {
	return catalog[c.picker.Intn(KindCount)]
}
