package bot

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"go-mancala"
)

func TestEvaluateFinal(t *testing.T) {
	for _, test := range []struct {
		board string
		score int
	}{
		{"<6,20,28,0,0,0,0,0,0,0,0,0,0,0,0>", WinScore},
		{"<6,28,20,0,0,0,0,0,0,0,0,0,0,0,0>", -WinScore},
		{"<6,24,24,0,0,0,0,0,0,0,0,0,0,0,0>", 0},
		// Stones left in the pits belong to their owner
		{"<6,24,20,0,0,0,0,0,0,0,0,0,1,1,2>", 0},
		{"<6,20,26,2,0,0,0,0,0,0,0,0,0,0,0>", WinScore},
	} {
		for _, turn := range []mancala.Player{mancala.Player1, mancala.Player2} {
			s := parse(t, test.board, turn)
			require.Equal(t, test.score, Evaluate(s), "%s", s)
			require.Equal(t, -test.score, EvaluateFor(s, mancala.Player1), "%s", s)
		}
	}
}

func TestEvaluateStart(t *testing.T) {
	// Pit 2 and pit 9 would each earn an extra turn
	s := mancala.MakeState()
	require.Equal(t, -5, Evaluate(s))

	s = mancala.FromBoard(mancala.MakeBoard(), mancala.Player2)
	require.Equal(t, 5, Evaluate(s))
}

func TestEvaluateTerms(t *testing.T) {
	board := "<6,5,7,2,2,2,2,3,2,1,0,2,2,2,2>"

	t.Run("AI to move", func(t *testing.T) {
		s := parse(t, board, mancala.Player2)
		require.Equal(t, 2, storeDifference(s, mancala.Player2))
		require.Equal(t, 5, extraTurnPotential(s, mancala.Player2))
		require.Equal(t, 4, capturePotential(s, mancala.Player2))
		require.Equal(t, -6, stoneDistribution(s, mancala.Player2))
		require.Equal(t, 3*2+5+2*4-6, Evaluate(s))
	})

	t.Run("human to move", func(t *testing.T) {
		s := parse(t, board, mancala.Player1)
		require.Zero(t, extraTurnPotential(s, mancala.Player2))
		require.Zero(t, capturePotential(s, mancala.Player2))
		require.Equal(t, 3*2-6, Evaluate(s))
	})

	t.Run("potential of the human is negative", func(t *testing.T) {
		// Pit 5 reaches the store, pit 0 reaches the empty pit 1
		s := parse(t, "<6,0,0,1,0,3,4,4,1,4,4,4,4,4,4>", mancala.Player1)
		require.Equal(t, -5, extraTurnPotential(s, mancala.Player2))
		require.Equal(t, -5, capturePotential(s, mancala.Player2))
		require.Equal(t, 5, extraTurnPotential(s, mancala.Player1))
	})
}

// Pits 8 and 9 both reach the empty pit 10.  Both are counted, even
// though only one capture could ever happen there.
func TestCapturePotentialCountsEveryPit(t *testing.T) {
	s := parse(t, "<6,0,0,4,4,4,4,4,4,4,2,1,0,5,5>", mancala.Player2)
	require.Equal(t, 2*(4+1), capturePotential(s, mancala.Player2))
	require.Equal(t, -2*(4+1), capturePotential(s, mancala.Player1))
}

func TestEvaluateSymmetric(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 300; i++ {
		s := randomState(r, r.Intn(60))
		require.Equal(t, Evaluate(s), EvaluateFor(s, mancala.Player2))
		require.Equal(t, -Evaluate(s), EvaluateFor(s, mancala.Player1), "%s", s)
	}
}
