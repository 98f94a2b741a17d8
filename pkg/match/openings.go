package match

import (
	"bufio"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"sync"

	"laptudirm.com/x/quoridor/pkg/board"
)

// Opening is the position a game starts from: optionally a random set of
// walls, followed by a fixed line of turns.
type Opening struct {
	RandomWalls bool
	Seed        int64

	Turns []board.Turn
}

var ErrOpening = errors.New("opening: illegal opening")

// ParseOpening parses a line of turns in coordinate notation.
func ParseOpening(line string) (Opening, error) {
	var opening Opening
	for _, field := range strings.Fields(line) {
		turn, err := board.ParseTurn(field)
		if err != nil {
			return Opening{}, err
		}

		opening.Turns = append(opening.Turns, turn)
	}

	return opening, nil
}

// Setup plays the opening on the given board.
func (opening Opening) Setup(b *board.Board) error {
	if opening.RandomWalls {
		b.RandomStart(rand.New(rand.NewSource(opening.Seed)))
	}

	for _, turn := range opening.Turns {
		if !b.Legal(turn) {
			return fmt.Errorf("%w: %s in %s", ErrOpening, turn, opening)
		}

		b.ApplyTurn(turn)
	}

	return nil
}

func (opening Opening) String() string {
	var parts []string
	if opening.RandomWalls {
		parts = append(parts, fmt.Sprintf("random walls #%d", opening.Seed))
	}

	for _, turn := range opening.Turns {
		parts = append(parts, turn.String())
	}

	if len(parts) == 0 {
		return "startpos"
	}

	return strings.Join(parts, " ")
}

// OpeningConfig describes where the openings of a series of games come
// from. With neither a file nor random walls every game starts from the
// initial position.
type OpeningConfig struct {
	// File with one opening per line, see ParseOpening. Empty lines and
	// lines starting with # are ignored.
	File string `yaml:"file"`

	// Either sequential or random.
	Order string `yaml:"order"`

	// Number of openings already used, to resume a series.
	Start int `yaml:"start"`

	RandomWalls bool  `yaml:"random-walls"`
	Seed        int64 `yaml:"seed"`
}

// OpeningBook hands out openings to the games of a series. It is safe for
// concurrent use.
type OpeningBook struct {
	config  OpeningConfig
	entries []Opening

	rng  *rand.Rand
	used int

	mu sync.Mutex
}

func NewBook(config OpeningConfig) (*OpeningBook, error) {
	book := OpeningBook{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}

	switch config.Order {
	case "", "sequential", "random":
	default:
		return nil, fmt.Errorf("opening book: invalid order %q", config.Order)
	}

	if config.File != "" {
		entries, err := readBook(config.File)
		if err != nil {
			return nil, err
		}

		if len(entries) == 0 {
			return nil, fmt.Errorf("opening book: %s has no openings", config.File)
		}

		book.entries = entries
	}

	// replay the openings used before a restart
	for book.used < config.Start {
		book.next()
	}

	return &book, nil
}

func readBook(name string) ([]Opening, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	defer file.Close()

	var entries []Opening
	scanner := bufio.NewScanner(file)
	for line := 1; scanner.Scan(); line++ {
		text := strings.Trim(scanner.Text(), "\n\r\t ")
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		opening, err := ParseOpening(text)
		if err != nil {
			return nil, fmt.Errorf("opening book: %s:%d: %w", name, line, err)
		}

		entries = append(entries, opening)
	}

	return entries, scanner.Err()
}

// Next returns the next opening of the series.
func (book *OpeningBook) Next() Opening {
	book.mu.Lock()
	defer book.mu.Unlock()
	return book.next()
}

func (book *OpeningBook) next() Opening {
	var opening Opening
	if len(book.entries) > 0 {
		switch book.config.Order {
		case "random":
			opening = book.entries[book.rng.Intn(len(book.entries))]
		default:
			opening = book.entries[book.used%len(book.entries)]
		}
	}

	if book.config.RandomWalls {
		opening.RandomWalls = true
		opening.Seed = book.config.Seed + int64(book.used)
	}

	book.used++
	return opening
}

// Wrap returns the configuration which resumes the series after the
// openings handed out so far.
func (book *OpeningBook) Wrap() OpeningConfig {
	book.mu.Lock()
	defer book.mu.Unlock()

	config := book.config
	config.Start = book.used
	return config
}
