package fastmin

import "fmt"

// MoveKind selects the move family of a run.
type MoveKind int

const (
	// ExpansionMove lets every position keep its label or switch to Alpha.
	ExpansionMove MoveKind = iota
	// SwapMove relabels positions holding Alpha or Beta among {Alpha, Beta}.
	SwapMove
)

// String implements fmt.Stringer.
func (k MoveKind) String() string {
	switch k {
	case ExpansionMove:
		return "expansion"
	case SwapMove:
		return "swap"
	default:
		return fmt.Sprintf("MoveKind(%d)", int(k))
	}
}

// Move describes one binary sub-problem. Beta is meaningful for swaps
// only, where Alpha < Beta.
type Move struct {
	Kind  MoveKind
	Alpha int
	Beta  int
}

// String implements fmt.Stringer.
func (m Move) String() string {
	if m.Kind == SwapMove {
		return fmt.Sprintf("swap(%d,%d)", m.Alpha, m.Beta)
	}

	return fmt.Sprintf("expand(%d)", m.Alpha)
}

// moves enumerates one cycle of kind over numLabels labels: ascending
// labels for expansion, lexicographic pairs (a < b) for swap.
func moves(kind MoveKind, numLabels int) []Move {
	if kind == SwapMove {
		out := make([]Move, 0, numLabels*(numLabels-1)/2)
		for a := 0; a < numLabels; a++ {
			for b := a + 1; b < numLabels; b++ {
				out = append(out, Move{Kind: SwapMove, Alpha: a, Beta: b})
			}
		}

		return out
	}
	out := make([]Move, numLabels)
	for a := range out {
		out[a] = Move{Kind: ExpansionMove, Alpha: a}
	}

	return out
}

// MoveEvent reports the outcome of one move to an observer.
//   - Cycle:    1-based cycle number.
//   - Changed:  positions whose label changed (0 if the move was rejected).
//   - Accepted: false if the energy guard reverted the move.
//   - Energy:   total energy after the move.
//   - Flow:     value of the minimum cut.
type MoveEvent struct {
	Cycle    int
	Move     Move
	Changed  int
	Accepted bool
	Energy   float64
	Flow     float64
}

// Stats summarizes the last run of a Minimizer.
type Stats struct {
	Cycles    int     // cycles started
	Moves     int     // moves solved
	Changes   int     // label changes kept
	Converged bool    // a full cycle produced no change
	Energy    float64 // final energy
}
