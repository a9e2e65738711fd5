package combination

import (
	"testing"

	"github.com/lox/fivecard/internal/deck"
)

func TestFindGroup(t *testing.T) {
	tests := []struct {
		name  string
		cards string
		n     int
		want  []string
	}{
		{"highest pair wins", "7c2sKd7dKc", 2, []string{"Kd", "Kc"}},
		{"trips", "4h9s4c4dAs", 3, []string{"4h", "4c", "4d"}},
		{"trips in full house", "3c3d3hQsQd", 3, []string{"3c", "3d", "3h"}},
		{"quads", "JsJhJdJc2c", 4, []string{"Js", "Jh", "Jd", "Jc"}},
		{"pair found inside trips", "4h9s4c4dAs", 2, []string{"4h", "4c"}},
		{"no pair", "2d5c9hJsKh", 2, nil},
		{"no trips among two pairs", "KcKd7c7d2s", 3, nil},
		{"single card", "2d5c9hJsKh", 1, []string{"Kh"}},
		{"empty", "", 2, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group, ok := findGroup(deck.MustParseCards(tt.cards), tt.n)
			if tt.want == nil {
				if ok {
					t.Fatalf("findGroup() = %v, want none", group)
				}
				return
			}
			if !ok {
				t.Fatalf("findGroup() found nothing, want %v", tt.want)
			}
			got := notations(group)
			if len(got) != len(tt.want) {
				t.Fatalf("findGroup() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("findGroup() = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestFindGroupSkipsMalformedCards(t *testing.T) {
	cards := []deck.Card{{}, {}, deck.NewCard(deck.Spades, deck.Two)}
	if group, ok := findGroup(cards, 2); ok {
		t.Errorf("malformed cards formed a group: %v", group)
	}
}

func TestOrderByPriority(t *testing.T) {
	cards := deck.MustParseCards("2s9dKhKc9c")
	input := append([]deck.Card(nil), cards...)

	kings := deck.MustParseCards("KhKc")
	nines := deck.MustParseCards("9d9c")
	got := notations(orderByPriority(cards, kings, nines))
	want := []string{"Kh", "Kc", "9d", "9c", "2s"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("orderByPriority() = %v, want %v", got, want)
		}
	}

	got = notations(orderByPriority(cards))
	want = []string{"Kh", "Kc", "9d", "9c", "2s"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("orderByPriority() without groups = %v, want %v", got, want)
		}
	}

	for i := range cards {
		if cards[i] != input[i] {
			t.Fatalf("input modified: %v, was %v", cards, input)
		}
	}
}

func TestWithoutCards(t *testing.T) {
	cards := deck.MustParseCards("AsAhKd")
	rest := withoutCards(cards, deck.MustParseCards("Ah"))
	if len(rest) != 2 || !rest[0].Equals(cards[0]) || !rest[1].Equals(cards[2]) {
		t.Errorf("withoutCards() = %v", rest)
	}
	if len(cards) != 3 {
		t.Error("input modified")
	}
}
