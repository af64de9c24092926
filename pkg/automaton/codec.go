package automaton

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
)

// Transition is the wire form of a single transition. The reference format
// encoded transitions as "<state>,<symbol>" composite keys, which breaks as
// soon as a state label contains a comma; a list of triples has no such
// ambiguity.
type Transition struct {
	From State  `json:"from"`
	On   string `json:"on"`
	To   State  `json:"to"`
}

// Document is the stable JSON shape of an automaton, used for file storage,
// Redis values and the HTTP API.
type Document struct {
	States       []State      `json:"states"`
	Alphabet     []string     `json:"alphabet"`
	Transitions  []Transition `json:"transitions"`
	Start        State        `json:"start_state"`
	AcceptStates []State      `json:"accept_states"`
}

// Document returns the canonical wire form of the automaton. All
// sequence-valued fields are sorted, so the output is byte-stable across
// invocations and suitable for fingerprinting.
func (a *Automaton) Document() Document {
	doc := Document{
		States:       a.States(),
		Start:        a.start,
		AcceptStates: a.AcceptStates(),
	}
	for _, c := range a.Alphabet() {
		doc.Alphabet = append(doc.Alphabet, string(c))
	}
	doc.Transitions = make([]Transition, 0, len(a.transitions))
	for k, to := range a.transitions {
		doc.Transitions = append(doc.Transitions, Transition{From: k.From, On: string(k.On), To: to})
	}
	sort.Slice(doc.Transitions, func(i, j int) bool {
		if doc.Transitions[i].From != doc.Transitions[j].From {
			return doc.Transitions[i].From < doc.Transitions[j].From
		}
		return doc.Transitions[i].On < doc.Transitions[j].On
	})
	return doc
}

// FromDocument rebuilds an automaton from its wire form, running the full
// construction validation. Symbols must be exactly one rune.
func FromDocument(doc Document) (*Automaton, error) {
	alphabet := make([]Symbol, 0, len(doc.Alphabet))
	for _, s := range doc.Alphabet {
		c, err := singleRune(s)
		if err != nil {
			return nil, fmt.Errorf("alphabet: %w", err)
		}
		alphabet = append(alphabet, c)
	}
	transitions := make(map[Key]State, len(doc.Transitions))
	for _, t := range doc.Transitions {
		c, err := singleRune(t.On)
		if err != nil {
			return nil, fmt.Errorf("transition from %q: %w", t.From, err)
		}
		transitions[Key{From: t.From, On: c}] = t.To
	}
	return New(doc.States, alphabet, transitions, doc.Start, doc.AcceptStates)
}

// MarshalJSON is implemented on Automaton for convenience; it emits the
// canonical Document form.
func (a *Automaton) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Document())
}

// Fingerprint returns a stable content hash over the canonical Document
// encoding. Structurally equal automata always share a fingerprint, across
// processes and runs, which makes it a safe storage identifier where the
// reference design hashed an unordered state set.
func (a *Automaton) Fingerprint() string {
	data, err := json.Marshal(a.Document())
	if err != nil {
		// Document contains only strings and slices; Marshal cannot fail.
		panic(fmt.Sprintf("automaton: canonical encoding failed: %v", err))
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func singleRune(s string) (Symbol, error) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("symbol %q must be exactly one character", s)
	}
	return Symbol(runes[0]), nil
}
