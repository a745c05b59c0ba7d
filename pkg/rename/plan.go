package rename

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/bumv/pkg/errors"
	"github.com/arthur-debert/bumv/pkg/logging"
	"github.com/arthur-debert/bumv/pkg/types"
)

// GroupKind classifies a connected component of the mapping graph.
type GroupKind int

const (
	// Chain is an open rename sequence; executing it from the tail
	// backward needs no temporary name.
	Chain GroupKind = iota
	// Cycle returns to its starting path and needs exactly one
	// temporary rename to break.
	Cycle
)

func (k GroupKind) String() string {
	if k == Cycle {
		return "cycle"
	}
	return "chain"
}

// Step is one filesystem rename, paths relative to the root. Temp marks
// the steps that move through a temporary name.
type Step struct {
	From string
	To   string
	Temp bool
}

// Group is one independent rename component with its ordered steps.
type Group struct {
	Kind  GroupKind
	Steps []Step
}

// Plan is the full ordered operation list for one run.
type Plan struct {
	Mapping Mapping
	Groups  []Group
}

// Steps returns every step across groups in execution order.
func (p *Plan) Steps() []Step {
	var steps []Step
	for _, g := range p.Groups {
		steps = append(steps, g.Steps...)
	}
	return steps
}

// IsEmpty reports whether there is nothing to do.
func (p *Plan) IsEmpty() bool {
	return len(p.Groups) == 0
}

// Describe renders the step list the way it is shown to the user,
// one "old -> new" line per step, temporaries included.
func (p *Plan) Describe() string {
	var out string
	for i, s := range p.Steps() {
		if i > 0 {
			out += "\n"
		}
		out += fmt.Sprintf("%s -> %s", s.From, s.To)
	}
	return out
}

// Planner partitions a validated mapping into chains and cycles and
// orders the steps so every intermediate state is collision free. It
// probes the filesystem only to pick safe temporary names.
type Planner struct {
	fs   types.FS
	root string
}

// NewPlanner creates a planner rooted at the directory the snapshot
// was captured from.
func NewPlanner(fsys types.FS, root string) *Planner {
	return &Planner{fs: fsys, root: root}
}

// Build computes the ordered plan for a mapping.
//
// Every path has at most one outgoing edge (sources are unique) and at
// most one incoming edge (targets are unique), so each connected
// component is a simple chain or a simple cycle. Chains run from the
// tail backward: each emitted step's target is not the source of any
// pending step. A cycle is broken by moving one member aside to a
// temporary name, running the rest as a chain, then moving the
// temporary to its real target.
func (p *Planner) Build(m Mapping) (*Plan, error) {
	logger := logging.GetLogger("rename.planner")

	next := make(map[string]string, len(m.Pairs)) // old -> new
	hasIncoming := make(map[string]bool, len(m.Pairs))
	for _, pair := range m.Pairs {
		next[pair.Old] = pair.New
		hasIncoming[pair.New] = true
	}

	targets := m.Targets()
	plan := &Plan{Mapping: m}
	visited := make(map[string]struct{}, len(m.Pairs))

	// Chains first: walk forward from every head (a source nothing
	// renames into), then emit the traversed edges in reverse.
	for _, pair := range m.Pairs {
		if hasIncoming[pair.Old] {
			continue
		}
		nodes := []string{pair.Old}
		for cur := pair.Old; ; {
			visited[cur] = struct{}{}
			to, ok := next[cur]
			if !ok {
				break
			}
			nodes = append(nodes, to)
			cur = to
		}
		group := Group{Kind: Chain}
		for i := len(nodes) - 2; i >= 0; i-- {
			group.Steps = append(group.Steps, Step{From: nodes[i], To: nodes[i+1]})
		}
		plan.Groups = append(plan.Groups, group)
	}

	// Whatever is left belongs to cycles.
	tempCounter := 0
	for _, pair := range m.Pairs {
		if _, done := visited[pair.Old]; done {
			continue
		}
		cycle := []string{pair.Old}
		visited[pair.Old] = struct{}{}
		for cur := next[pair.Old]; cur != pair.Old; cur = next[cur] {
			cycle = append(cycle, cur)
			visited[cur] = struct{}{}
		}

		temp, err := p.tempName(pair.Old, targets, &tempCounter)
		if err != nil {
			return nil, err
		}
		logger.Debug().
			Str("path", pair.Old).
			Str("temp", temp).
			Int("length", len(cycle)).
			Msg("Breaking cycle through temporary name")

		group := Group{Kind: Cycle}
		group.Steps = append(group.Steps, Step{From: pair.Old, To: temp, Temp: true})
		for i := len(cycle) - 1; i >= 1; i-- {
			group.Steps = append(group.Steps, Step{From: cycle[i], To: next[cycle[i]]})
		}
		group.Steps = append(group.Steps, Step{From: temp, To: next[pair.Old], Temp: true})
		plan.Groups = append(plan.Groups, group)
	}

	logger.Debug().
		Int("pairs", len(m.Pairs)).
		Int("groups", len(plan.Groups)).
		Msg("Plan built")

	return plan, nil
}

// maxTempProbes bounds the search for a free temporary name.
const maxTempProbes = 10000

// tempName derives a temporary name from source that collides with no
// existing file and no pending target. The counter is shared across the
// plan so names stay deterministic for tests.
func (p *Planner) tempName(source string, targets map[string]struct{}, counter *int) (string, error) {
	dir := filepath.Dir(source)
	base := filepath.Base(source)

	for probes := 0; probes < maxTempProbes; probes++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s.n%d.tmp", base, *counter))
		*counter++

		if _, pending := targets[candidate]; pending {
			continue
		}
		if _, err := p.fs.Stat(filepath.Join(p.root, candidate)); err == nil {
			continue
		}
		targets[candidate] = struct{}{}
		return candidate, nil
	}
	return "", errors.Newf(errors.ErrTempName,
		"could not find a free temporary name for %q", source)
}
