package oasprune

// Document is the root of an OpenAPI document. Only the parts the editor
// reasons about are modeled as structure; informational fields are carried
// through so a loaded document round-trips.
type Document struct {
	OpenAPI    string               `json:"openapi,omitempty" yaml:"openapi,omitempty"`
	Info       *Info                `json:"info,omitempty" yaml:"info,omitempty"`
	Paths      map[string]*PathItem `json:"paths,omitempty" yaml:"paths,omitempty"`
	Components *Components          `json:"components,omitempty" yaml:"components,omitempty"`
	Tags       []*Tag               `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Info carries document metadata; the editor never touches it.
type Info struct {
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Version     string `json:"version,omitempty" yaml:"version,omitempty"`
}

// PathItem holds the fixed set of HTTP method slots a path can carry.
type PathItem struct {
	Get     *Operation `json:"get,omitempty" yaml:"get,omitempty"`
	Put     *Operation `json:"put,omitempty" yaml:"put,omitempty"`
	Post    *Operation `json:"post,omitempty" yaml:"post,omitempty"`
	Delete  *Operation `json:"delete,omitempty" yaml:"delete,omitempty"`
	Options *Operation `json:"options,omitempty" yaml:"options,omitempty"`
	Head    *Operation `json:"head,omitempty" yaml:"head,omitempty"`
	Patch   *Operation `json:"patch,omitempty" yaml:"patch,omitempty"`
	Trace   *Operation `json:"trace,omitempty" yaml:"trace,omitempty"`
}

// methodSlot pairs a method token with the address of its slot so callers can
// clear the slot in place.
type methodSlot struct {
	method string
	op     **Operation
}

// slots enumerates every method slot of p in fixed method order.
func (p *PathItem) slots() []methodSlot {
	return []methodSlot{
		{"get", &p.Get},
		{"put", &p.Put},
		{"post", &p.Post},
		{"delete", &p.Delete},
		{"options", &p.Options},
		{"head", &p.Head},
		{"patch", &p.Patch},
		{"trace", &p.Trace},
	}
}

// empty reports whether no method slot holds an operation.
func (p *PathItem) empty() bool {
	for _, s := range p.slots() {
		if *s.op != nil {
			return false
		}
	}
	return true
}

// MethodOperation is one populated method slot of a path item.
type MethodOperation struct {
	Method    string
	Operation *Operation
}

// Operations lists the populated method slots of p in fixed method order.
func (p *PathItem) Operations() []MethodOperation {
	var out []MethodOperation
	for _, s := range p.slots() {
		if op := *s.op; op != nil {
			out = append(out, MethodOperation{Method: s.method, Operation: op})
		}
	}
	return out
}

// Operation is a single method handler under a path.
type Operation struct {
	OperationID string               `json:"operationId,omitempty" yaml:"operationId,omitempty"`
	Summary     string               `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description string               `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []string             `json:"tags,omitempty" yaml:"tags,omitempty"`
	Parameters  []*Parameter         `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	RequestBody *RequestBody         `json:"requestBody,omitempty" yaml:"requestBody,omitempty"`
	Responses   map[string]*Response `json:"responses,omitempty" yaml:"responses,omitempty"`
}

// Parameter describes one operation parameter, either inline or as a
// reference into the component pool.
type Parameter struct {
	Ref         string  `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Name        string  `json:"name,omitempty" yaml:"name,omitempty"`
	In          string  `json:"in,omitempty" yaml:"in,omitempty"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool    `json:"required,omitempty" yaml:"required,omitempty"`
	Schema      *Schema `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// RequestBody maps media types to schemas, or references a pool entry.
type RequestBody struct {
	Ref         string                `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Description string                `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool                  `json:"required,omitempty" yaml:"required,omitempty"`
	Content     map[string]*MediaType `json:"content,omitempty" yaml:"content,omitempty"`
}

// Response describes one status-code entry, or references a pool entry.
type Response struct {
	Ref         string                `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Description string                `json:"description,omitempty" yaml:"description,omitempty"`
	Content     map[string]*MediaType `json:"content,omitempty" yaml:"content,omitempty"`
}

// MediaType carries the schema for one content type.
type MediaType struct {
	Schema *Schema `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// Components is the pool of reusable, named document parts.
type Components struct {
	Schemas       map[string]*Schema      `json:"schemas,omitempty" yaml:"schemas,omitempty"`
	Parameters    map[string]*Parameter   `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	RequestBodies map[string]*RequestBody `json:"requestBodies,omitempty" yaml:"requestBodies,omitempty"`
	Responses     map[string]*Response    `json:"responses,omitempty" yaml:"responses,omitempty"`
}

// schema resolves a schema-pool name, returning nil for dangling names or a
// nil pool.
func (c *Components) schema(name string) *Schema {
	if c == nil {
		return nil
	}
	return c.Schemas[name]
}

// Tag is a named operation classification. Operations hold tags by name only;
// the document-level list owns the metadata.
type Tag struct {
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}
