// Tournament entry point
//
// Copyright (c) 2021, 2022, 2023  Philip Kaludercic
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

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"go-mancala"
	"go-mancala/bot"
	"go-mancala/conf"
	"go-mancala/db"
	"go-mancala/sched"
)

func main() {
	flag.Parse()
	if flag.NArg() != 0 {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Too many arguments passed to %s.\nUsage:\n",
			os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	config, err := conf.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	tc := &config.Tournament

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Create all agents
	var agents []mancala.Agent
	for i, name := range tc.Agents {
		a, err := bot.Make(name, tc.Seed+uint64(i))
		if err != nil {
			log.Fatal().Err(err).Msgf("Invalid agent %d", i+1)
		}
		agents = append(agents, a)
	}
	if len(agents) < 2 {
		log.Fatal().Msg("A tournament requires at least two agents")
	}

	// Create schedule
	var prog []sched.Composable
	if tc.Sanity {
		prog = append(prog, sched.MakeSanityCheck(tc.Seed))
	}
	rr := sched.MakeRoundRobin(tc.Rounds, tc.Plies, tc.Seed)
	prog = append(prog, rr)
	combo := &sched.Combo{
		Workers: tc.Workers,
		Timeout: config.MoveTimeout(),
		Stages:  prog,
	}

	// Start the tournament
	id := uuid.New()
	log.Info().Str("tournament", id.String()).Msgf("Starting with %d agents", len(agents))
	_, err = combo.Run(ctx, agents)
	if err != nil {
		log.Error().Err(err).Msg("Tournament was interrupted")
	}

	// Print results
	var out io.Writer = os.Stdout
	if res := tc.Result; res != "" {
		log.Debug().Msgf("Writing results to %s", res)
		file, err := os.Create(res)
		if err != nil {
			log.Fatal().Err(err).Send()
		}
		defer file.Close()
		out = file
	}
	fmt.Fprintf(out, "Tournament %s\n\n", id)
	for _, stage := range prog {
		stage.PrintResults(out)
		fmt.Fprintln(out)
	}

	if g := tc.Graph; g != "" {
		if err := graph(rr, g); err != nil {
			log.Error().Err(err).Msg("Failed to write dominance graph")
		}
	}

	if config.Database.Enabled && err == nil {
		if err := store(ctx, config, id, rr.Standings()); err != nil {
			log.Error().Err(err).Msg("Failed to store standings")
		}
	}
}

// Store the final standings in the database
func store(ctx context.Context, config *conf.Conf, id uuid.UUID, standings []mancala.Standing) error {
	d, err := db.Open(ctx, config.Database.File)
	if err != nil {
		return err
	}
	defer d.Close()

	tid, err := d.RegisterTournament(ctx, id,
		strings.Join(config.Tournament.Agents, ","))
	if err != nil {
		return err
	}
	for _, s := range standings {
		if err := d.RecordStanding(ctx, tid, s); err != nil {
			return err
		}
	}
	log.Info().Str("tournament", id.String()).
		Msgf("Stored %d standings in %s", len(standings), config.Database.File)
	return nil
}

func graph(stage sched.Composable, name string) error {
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	defer file.Close()

	log.Debug().Msgf("Writing dominance graph to %s", name)
	return stage.WriteDominance(file)
}
