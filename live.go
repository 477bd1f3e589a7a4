package oasprune

// liveComponentNames recomputes, from scratch, every component name reachable
// from any surviving operation or from the reusable pools. A full rescan is
// required after a deletion because a name the deleted operation used may
// still be referenced from elsewhere in the document.
func liveComponentNames(doc *Document) map[string]bool {
	acc := make(map[string]bool)
	for _, item := range doc.Paths {
		if item == nil {
			continue
		}
		for _, s := range item.slots() {
			collectOperationRefs(*s.op, doc.Components, acc)
		}
	}
	collectPoolRefs(doc.Components, acc)
	return acc
}
