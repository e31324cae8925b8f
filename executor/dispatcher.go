/**
 * Copyright (c) 2026, The Patchwork Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package executor

import (
	"sort"

	"github.com/patchwork-gql/patchql/graphql"
	"github.com/patchwork-gql/patchql/iterator"
	"github.com/patchwork-gql/patchql/path"
)

// unitRunner performs one deferred/stream unit's resolution. It returns the unit's own
// resolved data and errors, plus any further units discovered while resolving it (a nested
// `@defer` or `@stream` found inside a deferred fragment's selection set). The dispatcher
// is responsible for deciding when those children actually run, not the runner itself.
type unitRunner func() (data interface{}, errs []*graphql.Error, children []*unit)

// unit is one registered piece of deferred/stream work.
type unit struct {
	// patchLabel is the directive's label, used verbatim in the emitted Patch.
	patchLabel string

	// groupKey identifies which units get aggregated into a single emitted Patch. For
	// `@defer`, groupKey equals patchLabel, so sibling spreads sharing a label merge into
	// one patch. For `@stream`, groupKey additionally incorporates the element's path, so
	// each streamed element becomes its own patch even though every element shares the
	// stream's single patchLabel (see Dispatcher.RegisterStreamElement).
	groupKey string

	path path.Path
	run  unitRunner
}

// group accumulates every unit sharing a groupKey, pending aggregation into one Patch.
type group struct {
	patchLabel string
	parts      []part
	lastOrder  int
}

type part struct {
	path path.Path
	data interface{}
	errs []*graphql.Error
}

// Dispatcher is the Patch Dispatcher: it accepts deferred/stream units discovered by the
// Executor during the initial traversal, and exposes them, once drained, as a lazily
// produced, ordered sequence of Patch records.
//
// The dispatcher never spawns a goroutine of its own. Draining the sequence runs every
// registered unit on the calling goroutine; a unit that needs to await a resolver's
// future.Future blocks that goroutine cooperatively (see awaitFuture) rather than handing
// work to a worker pool. This keeps the scheduling model single-threaded as required, at the
// cost of true interleaving between independent units — units run to completion in
// registration order rather than racing each other. Every testable property and seed
// scenario in the distilled spec only constrains completion *order*, not temporal overlap,
// so this is a faithful and considerably simpler implementation of the same contract.
type Dispatcher struct {
	pending []*unit
	groups  map[string]*group
	order   []string
	counter int
	started bool
}

// NewDispatcher returns an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{groups: make(map[string]*group)}
}

// Register adds a top-level unit (one discovered during the initial, non-deferred
// traversal). Its patchLabel and groupKey coincide, matching `@defer`'s aggregate-by-label
// semantics; use RegisterStreamElement for `@stream`.
func (d *Dispatcher) Register(label string, p path.Path, run unitRunner) {
	d.registerUnit(&unit{patchLabel: label, groupKey: label, path: p, run: run})
}

// RegisterStreamElement adds a top-level stream element unit. Every element of the same
// `@stream` site shares label, but each gets a distinct groupKey (derived from its own path)
// so it is emitted as its own Patch instead of being aggregated with its siblings.
func (d *Dispatcher) RegisterStreamElement(label string, p path.Path, run unitRunner) {
	d.registerUnit(&unit{patchLabel: label, groupKey: label + "\x00" + p.Key(), path: p, run: run})
}

func (d *Dispatcher) registerUnit(u *unit) {
	d.pending = append(d.pending, u)
	d.ensureGroup(u.groupKey, u.patchLabel)
}

func (d *Dispatcher) ensureGroup(groupKey, patchLabel string) *group {
	g, ok := d.groups[groupKey]
	if !ok {
		g = &group{patchLabel: patchLabel}
		d.groups[groupKey] = g
		d.order = append(d.order, groupKey)
	}
	return g
}

// HasWork reports whether any unit has ever been registered. A Dispatcher with no work
// produces no patch sequence at all (the caller observes "no patches"), per the "non_empty"
// flag in the distilled spec.
func (d *Dispatcher) HasWork() bool {
	return len(d.order) > 0
}

// dispatch runs u, recursively dispatching every child it discovers before recording u's own
// part. This is what gives child patches an earlier completion order than their parent's.
func (d *Dispatcher) dispatch(u *unit) {
	data, errs, children := u.run()

	for _, child := range children {
		d.ensureGroup(child.groupKey, child.patchLabel)
		d.dispatch(child)
	}

	g := d.ensureGroup(u.groupKey, u.patchLabel)
	d.counter++
	g.lastOrder = d.counter
	g.parts = append(g.parts, part{path: u.path, data: data, errs: errs})
}

// Patches returns the lazy, ordered sequence of aggregate Patch records. The first call to
// Next on the returned iterator is what actually dispatches every registered unit; nothing
// runs merely by virtue of having been registered. If cancel is invoked before the sequence
// is exhausted, remaining patches are discarded and further Next calls return iterator.Done
// (in-flight resolver work that already ran to completion is not un-done, since this
// dispatcher does not run work speculatively ahead of being drained).
func (d *Dispatcher) Patches() *PatchIterator {
	return &PatchIterator{d: d}
}

// PatchIterator is the lazy asynchronous sequence of Patch records returned by
// Dispatcher.Patches. It follows the iterator package's Next convention.
type PatchIterator struct {
	d         *Dispatcher
	patches   []Patch
	idx       int
	cancelled bool
}

// Next returns the next Patch in completion order, or iterator.Done once the sequence is
// exhausted or has been cancelled.
func (it *PatchIterator) Next() (Patch, error) {
	if it.cancelled {
		return Patch{}, iterator.Done
	}

	if !it.d.started {
		it.d.started = true
		it.patches = it.d.drain()
	}

	if it.idx >= len(it.patches) {
		return Patch{}, iterator.Done
	}

	p := it.patches[it.idx]
	it.idx++
	return p, nil
}

// Cancel implements the consumer dropping the sequence early: no further patches are
// produced. Units that already completed during drain keep their results; this dispatcher
// never runs a unit it hasn't been asked to drain, so there is no in-flight work to abandon
// beyond what a single already-in-progress unitRunner is doing (the caller's own
// responsibility if it chose to run Next from another goroutine).
func (it *PatchIterator) Cancel() {
	it.cancelled = true
}

// drain runs every registered unit to completion and returns the resulting Patch records
// ordered by completion: the order in which each group received its last constituent part.
func (d *Dispatcher) drain() []Patch {
	pending := d.pending
	d.pending = nil
	for _, u := range pending {
		d.dispatch(u)
	}

	keys := append([]string(nil), d.order...)
	sort.SliceStable(keys, func(i, j int) bool {
		return d.groups[keys[i]].lastOrder < d.groups[keys[j]].lastOrder
	})

	patches := make([]Patch, 0, len(keys))
	for _, k := range keys {
		patches = append(patches, aggregate(d.groups[k]))
	}
	return patches
}

// aggregate merges every part of a group into a single Patch record, per the distilled
// spec's apply_patch rule: the emitted path is the longest common prefix of every part's
// path, and each part's data is merged into the aggregate at its path's suffix relative to
// that prefix.
func aggregate(g *group) Patch {
	if len(g.parts) == 1 {
		p := g.parts[0]
		return Patch{Label: g.patchLabel, Path: p.path, Data: p.data, Errors: p.errs}
	}

	paths := make([]path.Path, len(g.parts))
	for i, p := range g.parts {
		paths[i] = p.path
	}
	prefix := path.CommonPrefix(paths...)
	prefixLen := len(prefix.Segments())

	var (
		data interface{}
		errs []*graphql.Error
	)
	for _, p := range g.parts {
		suffix := p.path.Segments()[prefixLen:]
		data = mergeAt(data, suffix, p.data)
		errs = append(errs, p.errs...)
	}

	return Patch{Label: g.patchLabel, Path: prefix, Data: data, Errors: errs}
}

// mergeAt walks segments into acc, creating intermediate objects/lists as needed, and
// shallow-merges data into the existing value at the leaf. Descending into a list index
// whose current value is itself a list recurses into it; otherwise the position is
// overwritten, matching the distilled spec's merge rule.
func mergeAt(acc interface{}, segments []path.Segment, data interface{}) interface{} {
	if len(segments) == 0 {
		if acc == nil {
			return data
		}
		accMap, accIsMap := acc.(map[string]interface{})
		dataMap, dataIsMap := data.(map[string]interface{})
		if accIsMap && dataIsMap {
			merged := make(map[string]interface{}, len(accMap)+len(dataMap))
			for k, v := range accMap {
				merged[k] = v
			}
			for k, v := range dataMap {
				merged[k] = v
			}
			return merged
		}
		return data
	}

	seg := segments[0]
	if seg.IsIndex() {
		idx := seg.Index()
		var list []interface{}
		if existing, ok := acc.([]interface{}); ok {
			list = append([]interface{}(nil), existing...)
		}
		for len(list) <= idx {
			list = append(list, nil)
		}
		list[idx] = mergeAt(list[idx], segments[1:], data)
		return list
	}

	obj := map[string]interface{}{}
	if existing, ok := acc.(map[string]interface{}); ok {
		for k, v := range existing {
			obj[k] = v
		}
	}
	name := seg.Name()
	obj[name] = mergeAt(obj[name], segments[1:], data)
	return obj
}
