// Package record stores settled showdowns as TOML documents.
package record

import (
	"fmt"
	"io"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/lox/fivecard/internal/deck"
	"github.com/lox/fivecard/internal/showdown"
)

// Record is one showdown as written to disk.
type Record struct {
	ID       string    `toml:"id"`
	Time     time.Time `toml:"time"`
	Seed     int64     `toml:"seed"`
	HandSize int       `toml:"hand_size"`
	Verdict  string    `toml:"verdict"`
	Players  []Player  `toml:"players"`
}

// Player is one hand within a record.
type Player struct {
	Name        string   `toml:"name"`
	Cards       []string `toml:"cards"`
	Combination string   `toml:"combination"`
	Ordered     []string `toml:"ordered"`
	Strength    uint64   `toml:"strength"`
}

// FromShowdown builds a record with a fresh id. seed is the seed the deck
// was shuffled with, kept so the deal can be replayed.
func FromShowdown(res *showdown.Result, seed int64, at time.Time) Record {
	rec := Record{
		ID:      uuid.NewString(),
		Time:    at.UTC().Truncate(time.Millisecond),
		Seed:    seed,
		Verdict: res.Verdict(),
	}
	for _, p := range res.Players {
		cards := p.Hand.Cards()
		rec.HandSize = len(cards)
		rec.Players = append(rec.Players, Player{
			Name:        p.Name,
			Cards:       notations(cards),
			Combination: p.Result.Tier().String(),
			Ordered:     notations(p.Result.Cards()),
			Strength:    uint64(p.Result.Strength),
		})
	}
	return rec
}

// Encode writes rec to w in TOML.
func Encode(w io.Writer, rec Record) error {
	if rec.ID == "" {
		return fmt.Errorf("record: missing id")
	}
	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(rec)
}

// Decode reads a record written by Encode.
func Decode(r io.Reader) (Record, error) {
	var rec Record
	if _, err := toml.NewDecoder(r).Decode(&rec); err != nil {
		return Record{}, fmt.Errorf("record: decode: %w", err)
	}
	return rec, nil
}

// Hands parses the dealt cards of every player back into cards.
func (r Record) Hands() ([][]deck.Card, error) {
	hands := make([][]deck.Card, 0, len(r.Players))
	for _, p := range r.Players {
		cards := make([]deck.Card, 0, len(p.Cards))
		for _, s := range p.Cards {
			c, err := deck.ParseCard(s)
			if err != nil {
				return nil, fmt.Errorf("record %s, %s: %w", r.ID, p.Name, err)
			}
			cards = append(cards, c)
		}
		hands = append(hands, cards)
	}
	return hands, nil
}

func notations(cards []deck.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Notation()
	}
	return out
}
