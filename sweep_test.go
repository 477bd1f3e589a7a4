package oasprune

import "testing"

func TestSweepComponents_DeletesChainInDependencyOrder(t *testing.T) {
	doc := &Document{Components: &Components{Schemas: map[string]*Schema{
		"X": {Type: "object", Properties: map[string]*Schema{"y": {Ref: "#/components/schemas/Y"}}},
		"Y": {Type: "object", Properties: map[string]*Schema{"z": {Ref: "#/components/schemas/Z"}}},
		"Z": {Type: "string"},
	}}}
	sweepComponents(doc, map[string]bool{})
	if n := len(doc.Components.Schemas); n != 0 {
		t.Fatalf("expected empty schema pool, got %v", doc.Components.Schemas)
	}
}

func TestSweepComponents_LiveSchemasKept(t *testing.T) {
	doc := &Document{Components: &Components{Schemas: map[string]*Schema{
		"Keep": {Type: "string"},
		"Drop": {Type: "string"},
	}}}
	sweepComponents(doc, map[string]bool{"Keep": true})
	if doc.Components.Schemas["Keep"] == nil {
		t.Fatalf("live schema was deleted")
	}
	if doc.Components.Schemas["Drop"] != nil {
		t.Fatalf("dead schema survived")
	}
}

// A dead cycle blocks itself: every member's outgoing reference is a still
// present candidate, so no pass can delete anything and the loop stops.
func TestSweepComponents_DeadCycleSurvives(t *testing.T) {
	doc := &Document{Components: &Components{Schemas: map[string]*Schema{
		"P": {Type: "object", Properties: map[string]*Schema{"q": {Ref: "#/components/schemas/Q"}}},
		"Q": {Type: "object", Properties: map[string]*Schema{"p": {Ref: "#/components/schemas/P"}}},
	}}}
	sweepComponents(doc, map[string]bool{})
	if doc.Components.Schemas["P"] == nil || doc.Components.Schemas["Q"] == nil {
		t.Fatalf("cycle members were deleted: %v", doc.Components.Schemas)
	}
}

func TestSweepComponents_SelfReferenceSurvives(t *testing.T) {
	doc := &Document{Components: &Components{Schemas: map[string]*Schema{
		"Node": {Type: "object", Properties: map[string]*Schema{"next": {Ref: "#/components/schemas/Node"}}},
	}}}
	sweepComponents(doc, map[string]bool{})
	if doc.Components.Schemas["Node"] == nil {
		t.Fatalf("self-referencing schema was deleted")
	}
}

func TestSweepComponents_NonSchemaPoolsSweptOutright(t *testing.T) {
	doc := &Document{Components: &Components{
		Parameters: map[string]*Parameter{
			"Live": {Name: "live", In: "query"},
			"Dead": {Name: "dead", In: "query"},
		},
		RequestBodies: map[string]*RequestBody{"DeadBody": {}},
		Responses:     map[string]*Response{"DeadResp": {Description: "gone"}},
	}}
	sweepComponents(doc, map[string]bool{"Live": true})
	if doc.Components.Parameters["Live"] == nil {
		t.Fatalf("live parameter was deleted")
	}
	if doc.Components.Parameters["Dead"] != nil ||
		doc.Components.RequestBodies["DeadBody"] != nil ||
		doc.Components.Responses["DeadResp"] != nil {
		t.Fatalf("dead reusable entries survived: %+v", doc.Components)
	}
}

func TestSweepComponents_NilComponents(t *testing.T) {
	doc := &Document{}
	sweepComponents(doc, map[string]bool{})
	if doc.Components != nil {
		t.Fatalf("components appeared out of nowhere")
	}
}
