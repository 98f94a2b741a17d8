// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package turnlog reads and writes saved games. A log is a text file whose
// first line is the number of turns already reviewed, followed by one line
// per committed turn:
//
//	<player> <row> <col> <mode> <action>
//
// where action is 1 for a move, 2 for a horizontal wall and 3 for a
// vertical wall.
package turnlog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"laptudirm.com/x/quoridor/pkg/board"
)

// Mode is the play mode a game was recorded in.
type Mode int

const (
	HumanVsHuman Mode = iota
	HumanVsEngine
	EngineVsEngine
)

func (mode Mode) String() string {
	switch mode {
	case HumanVsHuman:
		return "human vs human"
	case HumanVsEngine:
		return "human vs engine"
	case EngineVsEngine:
		return "engine vs engine"
	default:
		return "mode " + strconv.Itoa(int(mode))
	}
}

// Entry is a single recorded turn.
type Entry struct {
	Player board.Player
	Turn   board.Turn
	Mode   Mode
}

// Automated reports whether the turn was made by the engine. In a human vs
// engine game the engine always plays player 1.
func (entry Entry) Automated() bool {
	switch entry.Mode {
	case HumanVsHuman:
		return false
	case HumanVsEngine:
		return entry.Player == board.Player1
	default:
		return true
	}
}

// Log is a saved game.
type Log struct {
	// Number of entries already stepped through by a review.
	Reviewed int

	Entries []Entry
}

var (
	ErrFormat      = errors.New("turnlog: malformed log")
	ErrWrongPlayer = errors.New("turnlog: turn recorded for the wrong player")
	ErrIllegalTurn = errors.New("turnlog: illegal turn")
)

// Append records a turn at the end of the log.
func (log *Log) Append(player board.Player, turn board.Turn, mode Mode) {
	log.Entries = append(log.Entries, Entry{Player: player, Turn: turn, Mode: mode})
}

// Read parses a log. Lines after the header which are empty are ignored.
func Read(r io.Reader) (*Log, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}

		return nil, fmt.Errorf("%w: missing header", ErrFormat)
	}

	reviewed, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil || reviewed < 0 {
		return nil, fmt.Errorf("%w: bad header %q", ErrFormat, scanner.Text())
	}

	log := &Log{Reviewed: reviewed}
	for line := 2; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		entry, err := parseEntry(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		log.Entries = append(log.Entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return log, nil
}

func parseEntry(text string) (Entry, error) {
	fields := strings.Fields(text)
	if len(fields) != 5 {
		return Entry{}, fmt.Errorf("%w: want 5 fields, got %q", ErrFormat, text)
	}

	var values [5]int
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return Entry{}, fmt.Errorf("%w: %q is not a number", ErrFormat, field)
		}

		values[i] = n
	}

	player, row, col, mode, action := values[0], values[1], values[2], values[3], values[4]
	switch {
	case player != 0 && player != 1:
		return Entry{}, fmt.Errorf("%w: bad player %d", ErrFormat, player)
	case action < int(board.MoveTo) || action > int(board.VerticalWall):
		return Entry{}, fmt.Errorf("%w: bad action %d", ErrFormat, action)
	case row < 0 || row >= board.MaxGridSize || col < 0 || col >= board.MaxGridSize:
		return Entry{}, fmt.Errorf("%w: bad coordinates %d %d", ErrFormat, row, col)
	}

	return Entry{
		Player: board.Player(player),
		Turn:   board.Turn{Action: board.Action(action), Row: row, Col: col},
		Mode:   Mode(mode),
	}, nil
}

// WriteTo writes the log in its text format.
func (log *Log) WriteTo(w io.Writer) (int64, error) {
	writer := bufio.NewWriter(w)

	var written int64
	n, err := fmt.Fprintf(writer, "%d\n", log.Reviewed)
	written += int64(n)
	if err != nil {
		return written, err
	}

	for _, entry := range log.Entries {
		n, err := fmt.Fprintf(writer, "%d %d %d %d %d\n",
			entry.Player, entry.Turn.Row, entry.Turn.Col, entry.Mode, entry.Turn.Action,
		)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}

	return written, writer.Flush()
}

// Replay applies the first n entries of the log to b, or all of them if n
// is negative. Each entry must be legal and recorded for the side to move.
// On error b holds the position before the offending entry.
func (log *Log) Replay(b *board.Board, n int) error {
	if n < 0 || n > len(log.Entries) {
		n = len(log.Entries)
	}

	for i, entry := range log.Entries[:n] {
		if entry.Player != b.SideToMove() {
			return fmt.Errorf("entry %d: %w: %s to move", i+1, ErrWrongPlayer, b.SideToMove())
		}

		if !b.Legal(entry.Turn) {
			return fmt.Errorf("entry %d: %w: %s", i+1, ErrIllegalTurn, entry.Turn)
		}

		b.ApplyTurn(entry.Turn)
	}

	return nil
}

// ReadFile reads the log saved at path.
func ReadFile(path string) (*Log, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer file.Close()
	return Read(file)
}

// WriteFile saves the log to path, replacing its previous contents.
func (log *Log) WriteFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := log.WriteTo(file); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}
