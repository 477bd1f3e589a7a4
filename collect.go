package oasprune

// collectSchemaRefs records every component name referenced from s into acc,
// resolving names through the pool so indirect references are found too.
// visited tracks names already expanded within one collection call, which
// keeps reference cycles from recursing forever. A dangling name is still
// recorded in acc; it just cannot be expanded further.
func collectSchemaRefs(s *Schema, pool *Components, acc, visited map[string]bool) {
	if s == nil {
		return
	}
	if s.Ref != "" {
		name := refName(s.Ref)
		acc[name] = true
		if visited[name] {
			return
		}
		visited[name] = true
		collectSchemaRefs(pool.schema(name), pool, acc, visited)
		return
	}
	collectSchemaRefs(s.Items, pool, acc, visited)
	for _, p := range s.Properties {
		collectSchemaRefs(p, pool, acc, visited)
	}
	if ap := s.AdditionalProperties; ap != nil {
		collectSchemaRefs(ap.Schema, pool, acc, visited)
	}
	for _, group := range [][]*Schema{s.AllOf, s.OneOf, s.AnyOf} {
		for _, sub := range group {
			collectSchemaRefs(sub, pool, acc, visited)
		}
	}
}

// collectOperationRefs records every component name op uses transitively:
// parameters (inline schemas or pool references), request body content and
// all response content. Pool entries referenced by name contribute the name
// itself; what those entries reference is covered by collectPoolRefs.
func collectOperationRefs(op *Operation, pool *Components, acc map[string]bool) {
	if op == nil {
		return
	}
	visited := make(map[string]bool)
	for _, p := range op.Parameters {
		collectParameterRefs(p, pool, acc, visited)
	}
	collectRequestBodyRefs(op.RequestBody, pool, acc, visited)
	for _, r := range op.Responses {
		collectResponseRefs(r, pool, acc, visited)
	}
}

func collectParameterRefs(p *Parameter, pool *Components, acc, visited map[string]bool) {
	if p == nil {
		return
	}
	if p.Ref != "" {
		acc[refName(p.Ref)] = true
		return
	}
	collectSchemaRefs(p.Schema, pool, acc, visited)
}

func collectRequestBodyRefs(rb *RequestBody, pool *Components, acc, visited map[string]bool) {
	if rb == nil {
		return
	}
	if rb.Ref != "" {
		acc[refName(rb.Ref)] = true
		return
	}
	for _, mt := range rb.Content {
		if mt != nil {
			collectSchemaRefs(mt.Schema, pool, acc, visited)
		}
	}
}

func collectResponseRefs(r *Response, pool *Components, acc, visited map[string]bool) {
	if r == nil {
		return
	}
	if r.Ref != "" {
		acc[refName(r.Ref)] = true
		return
	}
	for _, mt := range r.Content {
		if mt != nil {
			collectSchemaRefs(mt.Schema, pool, acc, visited)
		}
	}
}

// collectPoolRefs records every component name used by the reusable
// parameter, request body and response pools themselves, so entries only
// reachable through a pool definition count as referenced.
func collectPoolRefs(pool *Components, acc map[string]bool) {
	if pool == nil {
		return
	}
	visited := make(map[string]bool)
	for _, p := range pool.Parameters {
		collectParameterRefs(p, pool, acc, visited)
	}
	for _, rb := range pool.RequestBodies {
		collectRequestBodyRefs(rb, pool, acc, visited)
	}
	for _, r := range pool.Responses {
		collectResponseRefs(r, pool, acc, visited)
	}
}
