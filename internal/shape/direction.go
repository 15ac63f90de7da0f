package shape

// Direction is the result of classifying a point against a shape border.
type Direction int

const (
	DirNone Direction = iota
	DirN
	DirS
	DirE
	DirW
	DirCenter
)

func (d Direction) String() string {
	switch d {
	case DirN:
		return "n"
	case DirS:
		return "s"
	case DirE:
		return "e"
	case DirW:
		return "w"
	case DirCenter:
		return "c"
	default:
		return ""
	}
}

// Cursor names the pointer affordance shown while hovering in this direction.
func (d Direction) Cursor() string {
	switch d {
	case DirN, DirS, DirE, DirW:
		return d.String() + "-resize"
	case DirCenter:
		return "move"
	default:
		return "default"
	}
}

// Vertical reports whether the direction resizes along the y axis.
func (d Direction) Vertical() bool { return d == DirN || d == DirS }

// Horizontal reports whether the direction resizes along the x axis.
func (d Direction) Horizontal() bool { return d == DirE || d == DirW }
