// Package phraser rotates through a set of format strings so that repeated
// headings in the REPL don't all read the same.
package phraser

import (
	"fmt"

	"github.com/samber/lo"
)

type Phraser struct {
	phrases []string
	next    int
	// set once the first phrase has been handed out and dropped from the
	// rotation
	rotating bool
}

// New returns a Phraser over phrases. The first call to Get always uses the
// first phrase, after that the remaining phrases are used in a random order
// that is reshuffled each time all of them have been used.
//
//	headings := phraser.New([]string{
//		"Truth table for %s",
//		"Here's how %s turns out",
//	})
//	fmt.Println(headings.Get("AB&"))
func New(phrases []string) *Phraser {
	return &Phraser{phrases: phrases}
}

func (p *Phraser) Get(formatArgs ...any) string {
	switch len(p.phrases) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf(p.phrases[0], formatArgs...)
	}

	if !p.rotating {
		p.rotating = true
		first := p.phrases[0]
		p.phrases = p.reshuffled(p.phrases[1:])
		return fmt.Sprintf(first, formatArgs...)
	}

	if p.next >= len(p.phrases) {
		p.phrases = p.reshuffled(p.phrases)
		p.next = 0
	}
	phrase := p.phrases[p.next]
	p.next++
	return fmt.Sprintf(phrase, formatArgs...)
}

// reshuffled returns a shuffled copy so the caller's slice is never reordered.
func (p *Phraser) reshuffled(phrases []string) []string {
	return lo.Shuffle(append([]string(nil), phrases...))
}
