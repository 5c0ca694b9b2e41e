package flow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridcut/flow"
)

// SolverSuite exercises one MinCutSolver implementation under various
// scenarios; it is run once per solver.
type SolverSuite struct {
	suite.Suite
	ctx    context.Context
	solver flow.MinCutSolver
	fresh  func() flow.MinCutSolver
}

func (s *SolverSuite) SetupTest() {
	s.ctx = context.Background()
	s.solver = s.fresh()
}

// TestSingleEdge: s→0 (7), 0→1 (5), 1→t (9) ⇒ flow 5; edge 0→1 is cut.
func (s *SolverSuite) TestSingleEdge() {
	tn := newTestNetwork(2)
	tn.tweights(0, 7, 0)
	tn.tweights(1, 0, 9)
	tn.edge(0, 1, 5, 0)

	cut, err := s.solver.MinCut(s.ctx, tn.Network)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5.0, cut.Flow())
	require.False(s.T(), cut.IsSink(0), "node 0 keeps residual source capacity")
	require.True(s.T(), cut.IsSink(1), "node 1 still reaches the sink")
	require.Equal(s.T(), cut.Flow(), cutCapacity(tn, cut))
}

// TestMultiPath: two routes through a diamond combine their capacities.
//
//	s→0 (3), s→1 (4), 0→2 (2), 1→2 (3), 0→1 (1), 2→t (10)
func (s *SolverSuite) TestMultiPath() {
	tn := newTestNetwork(3)
	tn.tweights(0, 3, 0)
	tn.tweights(1, 4, 0)
	tn.tweights(2, 0, 10)
	tn.edge(0, 2, 2, 0)
	tn.edge(1, 2, 3, 0)
	tn.edge(0, 1, 1, 0)

	cut, err := s.solver.MinCut(s.ctx, tn.Network)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5.0, cut.Flow())
	require.Equal(s.T(), cut.Flow(), cutCapacity(tn, cut))
	require.Equal(s.T(), 3, cut.NumNodes())
}

// TestTerminalOffset: a lone node with both terminals pays the cheaper one.
func (s *SolverSuite) TestTerminalOffset() {
	tn := newTestNetwork(3)
	tn.tweights(0, 5, 3) // source side costs 3
	tn.tweights(1, 2, 6) // sink side costs 2
	tn.tweights(2, 4, 4) // tie

	cut, err := s.solver.MinCut(s.ctx, tn.Network)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 9.0, cut.Flow())
	require.False(s.T(), cut.IsSink(0))
	require.True(s.T(), cut.IsSink(1))
	require.False(s.T(), cut.IsSink(2), "ties resolve to the source side")
}

// TestZeroCapacity ensures zero-capacity arcs carry nothing.
func (s *SolverSuite) TestZeroCapacity() {
	tn := newTestNetwork(2)
	tn.tweights(0, 1, 0)
	tn.tweights(1, 0, 1)
	tn.edge(0, 1, 0, 0)

	cut, err := s.solver.MinCut(s.ctx, tn.Network)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0.0, cut.Flow())
}

// TestEmptyNetwork has no nodes at all.
func (s *SolverSuite) TestEmptyNetwork() {
	cut, err := s.solver.MinCut(s.ctx, flow.NewNetwork(0))
	require.NoError(s.T(), err)
	require.Zero(s.T(), cut.Flow())
	require.Zero(s.T(), cut.NumNodes())
}

// TestReuse runs the same solver on two different networks.
func (s *SolverSuite) TestReuse() {
	big := randomGridNetwork(8, 8, 7)
	_, err := s.solver.MinCut(s.ctx, big.Network)
	require.NoError(s.T(), err)

	tn := newTestNetwork(1)
	tn.tweights(0, 2, 1)
	cut, err := s.solver.MinCut(s.ctx, tn.Network)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1.0, cut.Flow())
	require.False(s.T(), cut.IsSink(0))
}

// TestRandomGridCutIsMinimal checks flow == cut capacity on random grids.
func (s *SolverSuite) TestRandomGridCutIsMinimal() {
	for seed := int64(1); seed <= 5; seed++ {
		tn := randomGridNetwork(6, 5, seed)
		cut, err := s.solver.MinCut(s.ctx, tn.Network)
		require.NoError(s.T(), err)
		require.InDelta(s.T(), cut.Flow(), cutCapacity(tn, cut), 1e-9, "seed %d", seed)
	}
}

// TestContextCancellation aborts before any augmentation.
func (s *SolverSuite) TestContextCancellation() {
	tn := randomGridNetwork(10, 10, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.solver.MinCut(ctx, tn.Network)
	require.ErrorIs(s.T(), err, context.Canceled)
}

// TestSolverSuites runs SolverSuite for every solver.
func TestSolverSuites(t *testing.T) {
	for _, f := range solverFactories {
		f := f
		t.Run(f.name, func(t *testing.T) {
			suite.Run(t, &SolverSuite{fresh: f.new})
		})
	}
}

// TestSolversAgree verifies that all solvers find the same flow value and
// the same (minimal sink side) partition on random grids.
func TestSolversAgree(t *testing.T) {
	ctx := context.Background()
	for seed := int64(10); seed < 20; seed++ {
		tn := randomGridNetwork(7, 6, seed)
		var ref *flow.Cut
		for _, f := range solverFactories {
			cut, err := f.new().MinCut(ctx, tn.Network)
			require.NoError(t, err, f.name)
			if ref == nil {
				ref = cut
				continue
			}
			require.InDelta(t, ref.Flow(), cut.Flow(), 1e-9, "%s seed %d", f.name, seed)
			for v := 0; v < tn.NumNodes(); v++ {
				require.Equal(t, ref.IsSink(v), cut.IsSink(v), "%s seed %d node %d", f.name, seed, v)
			}
		}
	}
}
