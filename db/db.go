// Tournament Standings Database
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

package db

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"
	"path"
	"strings"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"go-mancala"
)

//go:embed *.sql
var sql_dir embed.FS

// DB stores the standings of tournaments, but not the games
type DB struct {
	// The database connections
	read  *sql.DB
	write *sql.DB

	// The SQL queries are stored next to this file, and they are
	// loaded when the database is opened.  QUERIES are handled by
	// READ, and COMMANDS are handled by WRITE.
	queries  map[string]*sql.Stmt
	commands map[string]*sql.Stmt
}

// Open the database in FILE, creating it if necessary
func Open(ctx context.Context, file string) (*DB, error) {
	read, err := sql.Open("sqlite3", file)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open %s", file)
	}
	read.SetConnMaxLifetime(0)
	read.SetMaxIdleConns(1)

	write, err := sql.Open("sqlite3", file)
	if err != nil {
		read.Close()
		return nil, errors.Wrapf(err, "cannot open %s", file)
	}
	write.SetConnMaxLifetime(0)
	write.SetMaxIdleConns(1)
	write.SetMaxOpenConns(1)

	db := &DB{
		queries:  make(map[string]*sql.Stmt),
		commands: make(map[string]*sql.Stmt),
		write:    write,
		read:     read,
	}
	if err = db.prepare(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func (db *DB) prepare(ctx context.Context) error {
	for _, pragma := range []string{
		// https://www.sqlite.org/pragma.html#pragma_journal_mode
		"journal_mode = WAL",
		// https://www.sqlite.org/pragma.html#pragma_synchronous
		"synchronous = normal",
		// https://www.sqlite.org/pragma.html#pragma_foreign_keys
		"foreign_keys = on",
	} {
		log.Debug().Msgf("Run PRAGMA %v", pragma)
		_, err := db.write.ExecContext(ctx, "PRAGMA "+pragma+";")
		if err != nil {
			return errors.Wrap(err, pragma)
		}
	}

	entries, err := sql_dir.ReadDir(".")
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if !entry.Type().IsRegular() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		base := path.Base(entry.Name())
		data, err := fs.ReadFile(sql_dir, entry.Name())
		if err != nil {
			return err
		}

		if strings.HasPrefix(base, "create-") {
			_, err = db.write.ExecContext(ctx, string(data))
			log.Debug().Msgf("Executed query %v", base)
		} else {
			query := strings.TrimSuffix(base, ".sql")
			if strings.HasPrefix(query, "select-") {
				db.queries[query], err = db.read.PrepareContext(ctx, string(data))
				log.Debug().Msgf("Registered query %v", query)
			} else {
				db.commands[query], err = db.write.PrepareContext(ctx, string(data))
				log.Debug().Msgf("Registered command %v", query)
			}
		}
		if err != nil {
			return errors.Wrap(err, entry.Name())
		}
	}

	return nil
}

// RegisterTournament creates a new tournament and returns its row id
func (db *DB) RegisterTournament(ctx context.Context, id uuid.UUID, name string) (int64, error) {
	res, err := db.commands["insert-tournament"].ExecContext(ctx, id.String(), name)
	if err != nil {
		return 0, errors.Wrapf(err, "cannot register tournament %s", id)
	}
	return res.LastInsertId()
}

// RecordStanding inserts or replaces the standing of an agent
func (db *DB) RecordStanding(ctx context.Context, tid int64, s mancala.Standing) error {
	_, err := db.commands["insert-standing"].ExecContext(ctx,
		tid, s.Agent, s.Wins, s.Losses, s.Draws, s.Rating)
	return errors.Wrapf(err, "cannot record standing of %s", s.Agent)
}

// QueryStandings returns the standings of a tournament, best first
func (db *DB) QueryStandings(ctx context.Context, id uuid.UUID) ([]mancala.Standing, error) {
	rows, err := db.queries["select-standings"].QueryContext(ctx, id.String())
	if err != nil {
		return nil, errors.Wrapf(err, "cannot query tournament %s", id)
	}
	defer rows.Close()

	var standings []mancala.Standing
	for rows.Next() {
		var s mancala.Standing
		err = rows.Scan(&s.Agent, &s.Wins, &s.Losses, &s.Draws, &s.Rating)
		if err != nil {
			return nil, err
		}
		standings = append(standings, s)
	}
	return standings, rows.Err()
}

func (db *DB) Close() error {
	for _, stmts := range []map[string]*sql.Stmt{db.queries, db.commands} {
		for _, stmt := range stmts {
			if stmt != nil {
				stmt.Close()
			}
		}
	}

	// https://www.sqlite.org/pragma.html#pragma_optimize
	_, err := db.write.Exec("PRAGMA optimize;")
	if err != nil {
		log.Print(err)
	}

	if err := db.read.Close(); err != nil {
		db.write.Close()
		return err
	}
	return db.write.Close()
}
