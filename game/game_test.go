package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"go-mancala"
	"go-mancala/bot"
)

// mockAgent always proposes the same move
type mockAgent struct {
	move int
	err  error
}

func (m mockAgent) Request(context.Context, *mancala.State) (int, error) {
	return m.move, m.err
}

func (mockAgent) String() string { return "Mock" }

// stuckAgent never answers before the deadline
type stuckAgent struct{}

func (stuckAgent) Request(ctx context.Context, _ *mancala.State) (int, error) {
	<-ctx.Done()
	return -1, ctx.Err()
}

func (stuckAgent) String() string { return "Stuck" }

func TestPlay(t *testing.T) {
	t.Run("engine against random agent", func(t *testing.T) {
		g := &mancala.Game{
			State: mancala.MakeState(),
			One:   bot.MakeRandom(3),
			Two:   bot.MakeEngine(2),
		}
		require.NoError(t, Play(context.Background(), g, 0))
		require.True(t, g.State.Over())
		require.Contains(t, []mancala.Outcome{
			mancala.PLAYER1_WON,
			mancala.PLAYER2_WON,
			mancala.DRAW,
		}, g.Outcome)
		require.Equal(t, mancala.Total, g.State.Store(mancala.Player1)+g.State.Store(mancala.Player2))
		require.Positive(t, g.MoveCount)
	})

	t.Run("illegal move resigns", func(t *testing.T) {
		g := &mancala.Game{
			State: mancala.MakeState(),
			One:   mockAgent{move: mancala.Store1},
			Two:   bot.MakeRandom(0),
		}
		require.NoError(t, Play(context.Background(), g, 0))
		require.Equal(t, mancala.PLAYER1_RESIGNED, g.Outcome)
		require.Equal(t, mancala.Player2, g.Outcome.Winner())
		require.Zero(t, g.MoveCount)
	})

	t.Run("failing agent resigns", func(t *testing.T) {
		g := &mancala.Game{
			State: mancala.FromBoard(mancala.MakeBoard(), mancala.Player2),
			One:   bot.MakeRandom(0),
			Two:   mockAgent{move: -1, err: errors.New("out of ideas")},
		}
		require.NoError(t, Play(context.Background(), g, 0))
		require.Equal(t, mancala.PLAYER2_RESIGNED, g.Outcome)
	})

	t.Run("slow agent runs out of time", func(t *testing.T) {
		g := &mancala.Game{
			State: mancala.MakeState(),
			One:   stuckAgent{},
			Two:   bot.MakeRandom(0),
		}
		require.NoError(t, Play(context.Background(), g, 10*time.Millisecond))
		require.Equal(t, mancala.PLAYER1_RESIGNED, g.Outcome)
	})

	t.Run("late answer is still accepted", func(t *testing.T) {
		g := &mancala.Game{
			State: mancala.MakeState(),
			One:   mockAgent{move: 2, err: context.DeadlineExceeded},
			Two:   mockAgent{move: -1, err: errors.New("gives up")},
		}
		require.NoError(t, Play(context.Background(), g, 0))
		require.Equal(t, uint(1), g.MoveCount, "Pit 2 earns another turn, then pit 2 is empty")
		require.Equal(t, mancala.PLAYER1_RESIGNED, g.Outcome)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		g := &mancala.Game{
			State: mancala.MakeState(),
			One:   bot.MakeRandom(0),
			Two:   bot.MakeRandom(1),
		}
		require.ErrorIs(t, Play(ctx, g, 0), context.Canceled)
		require.Equal(t, mancala.ONGOING, g.Outcome)
	})
}

func TestMove(t *testing.T) {
	g := &mancala.Game{State: mancala.MakeState()}

	require.False(t, Move(g, &mancala.Move{Choice: 8, Player: mancala.Player2}),
		"Player 2 may not move first")
	require.False(t, Move(g, &mancala.Move{Choice: 8, Player: mancala.Player1}),
		"Pit 8 does not belong to Player 1")

	c, ok := MoveCopy(g, &mancala.Move{Choice: 0, Player: mancala.Player1})
	require.True(t, ok)
	require.Equal(t, uint(1), c.MoveCount)
	require.Equal(t, mancala.Player2, c.State.Current())
	require.Equal(t, mancala.MakeState(), g.State, "MoveCopy must not modify the original")
	require.Zero(t, g.MoveCount)
}

func TestScramble(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		a, b := mancala.MakeState(), mancala.MakeState()
		Scramble(a, 30, rand.New(rand.NewSource(seed)))
		Scramble(b, 30, rand.New(rand.NewSource(seed)))

		require.Equal(t, a, b, "Scrambling should be deterministic")
		require.False(t, a.Over(), "Scrambling must not end the game")
		board := a.Board()
		require.Equal(t, mancala.Total, board.Sum())
	}
}
