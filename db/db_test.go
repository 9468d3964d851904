package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"go-mancala"
)

func TestStandings(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	id := uuid.New()
	tid, err := db.RegisterTournament(ctx, id, "test")
	require.NoError(t, err)

	for _, s := range []mancala.Standing{
		{Agent: "Random", Wins: 0, Losses: 4, Draws: 0, Rating: 960.5},
		{Agent: "Minimax-1", Wins: 1, Losses: 2, Draws: 1, Rating: 990},
		{Agent: "Minimax-3", Wins: 2, Losses: 0, Draws: 0, Rating: 1020},
		{Agent: "Minimax-2", Wins: 1, Losses: 2, Draws: 1, Rating: 995.25},
	} {
		require.NoError(t, db.RecordStanding(ctx, tid, s))
	}
	// Recording an agent again replaces the earlier standing
	require.NoError(t, db.RecordStanding(ctx, tid, mancala.Standing{
		Agent: "Minimax-3", Wins: 3, Losses: 0, Draws: 0, Rating: 1034.75,
	}))

	standings, err := db.QueryStandings(ctx, id)
	require.NoError(t, err)
	require.Equal(t, []mancala.Standing{
		{Agent: "Minimax-3", Wins: 3, Losses: 0, Draws: 0, Rating: 1034.75},
		{Agent: "Minimax-1", Wins: 1, Losses: 2, Draws: 1, Rating: 990},
		{Agent: "Minimax-2", Wins: 1, Losses: 2, Draws: 1, Rating: 995.25},
		{Agent: "Random", Wins: 0, Losses: 4, Draws: 0, Rating: 960.5},
	}, standings)

	other, err := db.QueryStandings(ctx, uuid.New())
	require.NoError(t, err)
	require.Empty(t, other)
}

func TestDuplicateTournament(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	id := uuid.New()
	_, err = db.RegisterTournament(ctx, id, "first")
	require.NoError(t, err)
	_, err = db.RegisterTournament(ctx, id, "second")
	require.Error(t, err)
}
