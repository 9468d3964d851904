// Configuration loading and dumping
//
// Copyright (c) 2021, 2022  Philip Kaludercic
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

package conf

import (
	"flag"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"go-mancala"
)

const defconf = "go-mancala.toml"

var (
	debug  = false
	dump   = false
	cfile  = defconf
	dbfile = ""
	agents = ""

	difficulty int
	workers    uint
	rounds     uint
	seed       uint64
)

func init() {
	def := &defaultConfig

	flag.IntVar(&difficulty, "difficulty", def.Engine.Difficulty,
		"Difficulty of the engine (1-5)")
	flag.UintVar(&workers, "workers", def.Tournament.Workers,
		"Number of games to play at the same time")
	flag.UintVar(&rounds, "rounds", def.Tournament.Rounds,
		"Number of openings each pair of agents plays")
	flag.Uint64Var(&seed, "seed", def.Tournament.Seed,
		"Seed for random openings and agents")
	flag.StringVar(&agents, "agents", agents,
		"Comma separated list of agents to use in a tournament")
	flag.StringVar(&dbfile, "db", dbfile,
		"Store tournament standings in this database")

	flag.BoolVar(&debug, "debug", debug, "Enable debug output")
	flag.BoolVar(&dump, "dump-config", dump, "Dump configuration to standard output")
	flag.StringVar(&cfile, "conf", cfile, "Path to configuration file")
}

// Parse a configuration from R on top of the default configuration
func Parse(r io.Reader) (*Conf, error) {
	c := Default()
	_, err := toml.NewDecoder(r).Decode(c)
	if err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return c, nil
}

// Apply flags that were explicitly passed on the command line
func (c *Conf) override() {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "difficulty":
			c.Engine.Difficulty = difficulty
		case "workers":
			c.Tournament.Workers = workers
		case "rounds":
			c.Tournament.Rounds = rounds
		case "seed":
			c.Tournament.Seed = seed
		case "agents":
			c.Tournament.Agents = strings.Split(agents, ",")
		case "db":
			c.Database.Enabled = true
			c.Database.File = dbfile
		case "debug":
			c.Debug = debug
		}
	})
}

// Load the configuration file and the command line flags.
//
// A missing default configuration file is not an error.  If
// -dump-config was passed, the configuration is printed and the
// program exits.
func Load() (*Conf, error) {
	var c *Conf

	file, err := os.Open(cfile)
	if err != nil {
		if !os.IsNotExist(err) || cfile != defconf {
			return nil, errors.Wrapf(err, "cannot load %s", cfile)
		}
		c = Default()
	} else {
		defer file.Close()
		c, err = Parse(file)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot load %s", cfile)
		}
	}
	c.override()

	mancala.SetupLogging(c.Debug, os.Stderr)
	log.Debug().Str("file", cfile).Msg("Loaded configuration")

	// Dump the configuration onto the disk if requested
	if dump {
		err = c.Dump(os.Stdout)
		if err != nil {
			return nil, errors.Wrap(err, "failed to dump configuration")
		}
		os.Exit(0)
	}

	return c, nil
}

// Serialise the configuration into a writer
func (c *Conf) Dump(wr io.Writer) error {
	return toml.NewEncoder(wr).Encode(c)
}
