package oasprune

import "sort"

// Editor owns one Document and applies reference-aware operation deletion.
// The document is mutated in place; there is exactly one editor per document
// and no concurrent access.
type Editor struct {
	doc *Document
}

// New wraps an already parsed document. No validation is performed.
func New(doc *Document) *Editor {
	return &Editor{doc: doc}
}

// Document returns the live, mutated document, not a copy.
func (e *Editor) Document() *Document {
	return e.doc
}

// DeleteOperation removes the operation carrying the given operationId, then
// sweeps every pool component and tag that only it kept alive. Components
// still reachable from surviving operations or from the reusable pools are
// preserved. It reports whether a matching operation was found; when none
// matches the document is left untouched.
//
// operationIds are normally unique. Should several operations share one, a
// single call removes only the first match in sorted path order then fixed
// method order.
func (e *Editor) DeleteOperation(operationID string) bool {
	removed := e.removeOperation(operationID)
	if removed == nil {
		return false
	}
	sweepComponents(e.doc, liveComponentNames(e.doc))
	e.pruneTags(removed.Tags)
	return true
}

// removeOperation clears the first method slot whose operation carries the
// given operationId and prunes the path item once its last method goes.
func (e *Editor) removeOperation(operationID string) *Operation {
	paths := make([]string, 0, len(e.doc.Paths))
	for p := range e.doc.Paths {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, path := range paths {
		item := e.doc.Paths[path]
		if item == nil {
			continue
		}
		for _, s := range item.slots() {
			op := *s.op
			if op == nil || op.OperationID != operationID {
				continue
			}
			*s.op = nil
			if item.empty() {
				delete(e.doc.Paths, path)
			}
			return op
		}
	}
	return nil
}

// pruneTags drops tags that only the removed operation used. Only tags the
// removed operation referenced are reconsidered; a tag nothing ever used
// stays untouched. The tag list is dropped entirely once it empties.
func (e *Editor) pruneTags(removedTags []string) {
	if len(removedTags) == 0 || len(e.doc.Tags) == 0 {
		return
	}
	removed := make(map[string]bool, len(removedTags))
	for _, t := range removedTags {
		removed[t] = true
	}
	inUse := make(map[string]bool)
	for _, item := range e.doc.Paths {
		if item == nil {
			continue
		}
		for _, s := range item.slots() {
			if op := *s.op; op != nil {
				for _, t := range op.Tags {
					inUse[t] = true
				}
			}
		}
	}
	kept := e.doc.Tags[:0]
	for _, tag := range e.doc.Tags {
		if tag == nil || !removed[tag.Name] || inUse[tag.Name] {
			kept = append(kept, tag)
		}
	}
	if len(kept) == 0 {
		e.doc.Tags = nil
		return
	}
	e.doc.Tags = kept
}
