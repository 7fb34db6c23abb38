package cli

import (
	"errors"

	"storefront/internal/geo"
)

// ErrNoCandidates means a selection was attempted over an empty candidate
// set. Callers are expected to guard this upstream with their own message;
// the error is a backstop against an unwinnable prompt loop.
var ErrNoCandidates = errors.New("no candidates to select from")

// SelectByDistance ranks candidates by distance from ref, prints up to limit
// nearest entries (all of them when limit is -1), then prompts until the
// entered value matches an id in the full candidate set. Ids outside the
// displayed subset are still accepted.
func (p *Prompter) SelectByDistance(idLabel string, candidates []geo.Candidate, ref geo.Point, limit int) (int64, error) {
	if len(candidates) == 0 {
		return 0, ErrNoCandidates
	}

	ranked := geo.RankByDistance(candidates, ref)
	valid := make(map[int64]bool, len(ranked))

	p.Printf("%-*s%-10s\n", len(idLabel)+1, idLabel, "Distance")
	for i, rc := range ranked {
		valid[rc.ID] = true
		if limit == -1 || i < limit {
			p.Printf("%-*d%-10.2f\n", len(idLabel)+1, rc.ID, rc.Distance)
		}
	}

	for {
		sel, err := p.Choice("Please make your choice: ")
		if err != nil {
			return 0, err
		}
		if valid[int64(sel)] {
			return int64(sel), nil
		}
		p.Println("Invalid selection. Please enter an id among the listed options.")
	}
}
