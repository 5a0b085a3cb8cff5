// SPDX-License-Identifier: MIT
//
// File: journal.go
// Role: Reversible mutation batches.
// Policy:
//   - A record is copied the first time it is touched; Rollback restores the
//     copies verbatim, deletes records created inside the batch, and rewinds
//     the placeholder counter. Nothing is recomputed on rollback.

package pedigree

// Journal records the prior state of every record it hands out for mutation,
// so that a batch of changes can be undone exactly.
//
// A Journal is bound to one Graph and must not outlive a Clone of it.
type Journal struct {
	g       *Graph
	saved   map[string]*Individual // id → state before first touch; nil for created
	order   []string               // touch order, for Touched()
	seq     uint64                 // placeholder counter at Begin
	settled bool                   // Rollback already called
}

// Begin opens a Journal on g.
func (g *Graph) Begin() *Journal {
	return &Journal{
		g:     g,
		saved: make(map[string]*Individual),
		seq:   g.nextPlaceholder,
	}
}

// Graph returns the graph the journal mutates.
func (j *Journal) Graph() *Graph {
	return j.g
}

// Mutable implements Mutator. The record's current state is saved before the
// live record is returned.
func (j *Journal) Mutable(id string) (*Individual, bool) {
	n, ok := j.g.nodes[id]
	if !ok {
		return nil, false
	}
	if _, seen := j.saved[id]; !seen {
		j.saved[id] = copyIndividual(n)
		j.order = append(j.order, id)
	}

	return n, true
}

// Placeholder implements Mutator. Records created here are removed on Rollback.
func (j *Journal) Placeholder(female bool) *Individual {
	n := j.g.Placeholder(female)
	j.saved[n.ID] = nil
	j.order = append(j.order, n.ID)

	return n
}

// Touched returns the ids handed out by Mutable or created by Placeholder,
// in first-touch order.
func (j *Journal) Touched() []string {
	out := make([]string, len(j.order))
	copy(out, j.order)

	return out
}

// Created reports whether id was created inside this journal.
func (j *Journal) Created(id string) bool {
	prev, ok := j.saved[id]

	return ok && prev == nil
}

// Rollback restores every touched record, removes created records and
// rewinds the placeholder counter. Calling it twice is a no-op.
func (j *Journal) Rollback() {
	if j.settled {
		return
	}
	j.settled = true
	for id, prev := range j.saved {
		if prev == nil {
			delete(j.g.nodes, id)
			continue
		}
		j.g.nodes[id] = prev
	}
	j.g.nextPlaceholder = j.seq
}
