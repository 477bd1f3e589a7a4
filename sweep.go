package oasprune

// sweepComponents removes every pool entry whose name is not live. Reusable
// parameters, request bodies and responses carry no ordering constraints
// among themselves, so they go in a single pass. Schemas may reference other
// deletable schemas and are removed by repeated passes: a candidate is
// deleted once every name it collects from its own body is either not a
// candidate or already gone. Candidates that reference each other in a cycle
// keep blocking one another, so a fully dead reference cycle survives the
// sweep; see the package tests for the asserted behavior.
func sweepComponents(doc *Document, live map[string]bool) {
	c := doc.Components
	if c == nil {
		return
	}
	for name := range c.Parameters {
		if !live[name] {
			delete(c.Parameters, name)
		}
	}
	for name := range c.RequestBodies {
		if !live[name] {
			delete(c.RequestBodies, name)
		}
	}
	for name := range c.Responses {
		if !live[name] {
			delete(c.Responses, name)
		}
	}

	candidates := make(map[string]bool)
	for name := range c.Schemas {
		if !live[name] {
			candidates[name] = true
		}
	}
	for len(candidates) > 0 {
		deleted := false
		for name := range candidates {
			refs := make(map[string]bool)
			collectSchemaRefs(c.Schemas[name], c, refs, make(map[string]bool))
			blocked := false
			for r := range refs {
				if candidates[r] {
					blocked = true
					break
				}
			}
			if blocked {
				continue
			}
			delete(c.Schemas, name)
			delete(candidates, name)
			deleted = true
		}
		if !deleted {
			break
		}
	}
}
