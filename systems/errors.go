package systems

import "github.com/rotisserie/eris"

// ErrInvariant marks a state the spawn logic should never produce, such as
// two live players. It is raised with panic.
var ErrInvariant = eris.New("simulation invariant violated")

func invariant(format string, args ...any) {
	panic(eris.Wrapf(ErrInvariant, format, args...))
}
