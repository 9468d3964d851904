// Generic Scheduler Pool
//
// Copyright (c) 2022, 2023  Philip Kaludercic
//
// This file is part of go-mancala.
//
// go-mancala is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License,
// version 3, as published by the Free Software Foundation.
//
// go-mancala is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public
// License, version 3, along with go-mancala. If not, see
// <http://www.gnu.org/licenses/>

package sched

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"go-mancala"
	"go-mancala/game"
)

// A Composable stage takes a list of agents, plays a number of games
// and passes on the agents that qualified for the next stage
type Composable interface {
	fmt.Stringer
	Take([]mancala.Agent)
	Run(ctx context.Context, workers uint, timeout time.Duration) error
	Give() []mancala.Agent
	Standings() []mancala.Standing
	Ratings() map[mancala.Agent]float64
	PrintResults(io.Writer)
	WriteDominance(io.Writer) error
}

type score struct{ w, l, d uint }

type scheduler struct {
	name   string
	desc   string
	agents []mancala.Agent
	// Function to generate a schedule
	schedule func([]mancala.Agent) []*mancala.Game
	// All games that were played to the end
	games []*mancala.Game
	score map[mancala.Agent]*score
}

func (s *scheduler) String() string {
	return s.name
}

func (s *scheduler) Take(a []mancala.Agent) {
	s.agents = a
}

// Run plays all scheduled games, at most WORKERS at a time
func (s *scheduler) Run(ctx context.Context, workers uint, timeout time.Duration) error {
	games := s.schedule(s.agents)
	s.games = nil
	s.score = nil

	grp, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		grp.SetLimit(int(workers))
	}
	log.Debug().Msgf("Starting scheduler %s with %d games", s, len(games))

	var (
		lock sync.Mutex
		done uint
	)
	for i, g := range games {
		g := g
		g.Id = uint64(i + 1)
		grp.Go(func() error {
			if err := game.Play(ctx, g, timeout); err != nil {
				return err
			}

			lock.Lock()
			defer lock.Unlock()
			s.games = append(s.games, g)
			done++
			log.Info().Msgf("%d/%d (%s vs. %s) -> %s",
				done, len(games), g.One, g.Two, g.Outcome)
			return nil
		})
	}
	err := grp.Wait()

	sort.Slice(s.games, func(i, j int) bool {
		return s.games[i].Id < s.games[j].Id
	})
	log.Debug().Msgf("Completed scheduler %s", s)
	return err
}

// Give returns all agents that won or drew at least as often as they
// lost
func (s *scheduler) Give() (next []mancala.Agent) {
	for _, a := range s.agents {
		w, l, d := s.Score(a)
		if w+d >= l {
			next = append(next, a)
		}
	}
	return
}

// Score returns the wins, losses and draws of A
func (s *scheduler) Score(a mancala.Agent) (uint, uint, uint) {
	if s.score == nil {
		s.score = make(map[mancala.Agent]*score)

		for _, agent := range s.agents {
			s.score[agent] = &score{}
		}

		for _, g := range s.games {
			for _, p := range []mancala.Player{mancala.Player1, mancala.Player2} {
				S, ok := s.score[g.Player(p)]
				if !ok {
					continue
				}
				switch g.Outcome.Winner() {
				case p:
					S.w += 1
				case p.Opponent():
					S.l += 1
				default:
					if g.Outcome == mancala.DRAW {
						S.d += 1
					}
				}
			}
		}
	}

	if sc, ok := s.score[a]; ok {
		return sc.w, sc.l, sc.d
	}
	return 0, 0, 0
}

// Standings of all agents, ordered by points and then by name
func (s *scheduler) Standings() []mancala.Standing {
	var (
		standings = make([]mancala.Standing, 0, len(s.agents))
		ratings   = s.Ratings()
	)
	for _, a := range s.agents {
		w, l, d := s.Score(a)
		standings = append(standings, mancala.Standing{
			Agent:  a.String(),
			Wins:   w,
			Losses: l,
			Draws:  d,
			Rating: ratings[a],
		})
	}
	sort.SliceStable(standings, func(i, j int) bool {
		pi, pj := standings[i].Points(), standings[j].Points()
		if pi != pj {
			return pi > pj
		}
		return standings[i].Agent < standings[j].Agent
	})
	return standings
}

func (s *scheduler) PrintResults(W io.Writer) {
	fmt.Fprintf(W, "Stage %q\n\n", s.name)
	if len(s.games) == 0 {
		fmt.Fprintln(W, "No games took place.")
		return
	}
	fmt.Fprintln(W, s.desc)
	fmt.Fprintln(W)

	tw := tabwriter.NewWriter(W, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Agent\tWin\tLoss\tDraw\tScore\tELO\t")
	for _, st := range s.Standings() {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%.1f\t\n",
			st.Agent, st.Wins, st.Losses, st.Draws, st.Points(), st.Rating)
	}
	tw.Flush()
	fmt.Fprintln(W)

	tw = tabwriter.NewWriter(W, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Nr.\tPlayer 1\tPlayer 2\tStore 1\tStore 2\tDiff.\tOutcome")
	for _, g := range s.games {
		one := g.State.Store(mancala.Player1)
		two := g.State.Store(mancala.Player2)
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%d\t%s\n", g.Id,
			g.One, g.Two, one, two, one-two, g.Outcome)
	}
	tw.Flush()
}

var _ Composable = &scheduler{}
