// Position analysis
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
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"

	"go-mancala"
	"go-mancala/bot"
	"go-mancala/conf"
)

var (
	turn     = 1
	selfPlay = false
)

func init() {
	flag.IntVar(&turn, "turn", turn, "Player to move (1 or 2)")
	flag.BoolVar(&selfPlay, "self-play", selfPlay,
		"Evaluate for the player to move instead of Player 2")
}

func main() {
	flag.Parse()
	if flag.NArg() > 1 {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s [flags] [board]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	config, err := conf.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	board := mancala.MakeBoard()
	if flag.NArg() == 1 {
		board, err = mancala.Parse(flag.Arg(0))
		if err != nil {
			log.Fatal().Err(err).Msg("Invalid board")
		}
	}

	var p mancala.Player
	switch turn {
	case 1:
		p = mancala.Player1
	case 2:
		p = mancala.Player2
	default:
		log.Fatal().Msgf("Invalid player %d", turn)
	}
	state := mancala.FromBoard(board, p)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	engine := bot.MakeEngine(config.Engine.Difficulty)
	if selfPlay {
		engine = bot.MakeSelfPlayEngine(config.Engine.Difficulty)
	}
	log.Debug().Msgf("Analysing %s at depth %d", state, engine.Depth())
	res, err := engine.Analyse(ctx, state)
	if err != nil {
		log.Error().Err(err).Msg("Analysis was interrupted")
	}
	if res.Move < 0 {
		fmt.Println("No legal moves, the game is over:", state.Outcome())
		return
	}

	fmt.Printf("Position: %s\n", state)
	fmt.Printf("Engine:   %s (depth %d)\n", engine, engine.Depth())
	fmt.Printf("Move:     %d\n", res.Move)
	fmt.Printf("Score:    %d\n", res.Score)
	fmt.Printf("Nodes:    %d\n", res.Nodes)
	fmt.Printf("Cuts:     %d\n", res.Cuts)
}
