package schematic

import (
	"github.com/arthur-debert/schanno/pkg/errors"
	"github.com/arthur-debert/schanno/pkg/logging"
)

// Resolve reassigns designators to eliminate one duplicate problem. The
// document becomes Dirty; call Analyze before trusting problems or conflict
// flags again. An unknown strategy changes nothing.
func (d *Document) Resolve(p Problem, strategy FixStrategy) error {
	logger := logging.GetLogger("schematic")

	if !strategy.Valid() {
		logger.Debug().Str("strategy", string(strategy)).Msg("Ignoring unknown fix strategy")
		return nil
	}
	if len(p.Members) < 2 {
		return nil
	}
	for _, m := range p.Members {
		if !d.owns(m) {
			return errors.New(errors.ErrIndexMismatch, "problem member does not belong to this document")
		}
	}

	canonical := p.Canonical()
	if !canonical.hasNumber {
		return nil
	}

	switch strategy {
	case FixIncrementAll:
		d.incrementAll(p)
	case FixNextAvailable:
		d.nextAvailable(p)
	}

	for _, m := range p.Members {
		m.hasConflict = false
	}
	d.state = StateDirty

	logger.Info().
		Str("strategy", string(strategy)).
		Str("reference", canonical.reference).
		Int("members", len(p.Members)).
		Msg("Resolved duplicate designator")
	return nil
}

// incrementAll reserves len(members)-1 numbers right after the canonical one
// by shifting every other component of the same class above it, then
// numbers the members consecutively.
func (d *Document) incrementAll(p Problem) {
	canonical := p.Canonical()
	base := canonical.number
	shift := len(p.Members) - 1

	members := make(map[*Component]bool, len(p.Members))
	for _, m := range p.Members {
		members[m] = true
	}

	for _, c := range d.components {
		if members[c] || !c.hasNumber || c.letters != canonical.letters {
			continue
		}
		if c.number >= base+1 {
			c.setNumber(c.number + shift)
		}
	}

	for i, m := range p.Members {
		m.setNumber(base + i)
	}
}

// nextAvailable keeps the canonical number and gives each other member the
// smallest unused number above it. Gaps above the canonical are reused and
// numbers below it never are.
func (d *Document) nextAvailable(p Problem) {
	canonical := p.Canonical()
	used := make(map[int]bool)
	for _, c := range d.components {
		if c.hasNumber && c.letters == canonical.letters {
			used[c.number] = true
		}
	}

	for _, m := range p.Members[1:] {
		n := canonical.number + 1
		for used[n] {
			n++
		}
		m.setNumber(n)
		used[n] = true
	}
}

// ResolveAll resolves every current problem with the given strategy and
// re-analyzes. It fails with a stale-analysis error if the document is Dirty
// on entry.
func (d *Document) ResolveAll(strategy FixStrategy) error {
	problems, err := d.Problems()
	if err != nil {
		return err
	}
	for _, p := range problems {
		if err := d.Resolve(p, strategy); err != nil {
			return err
		}
	}
	d.Analyze()
	return nil
}
