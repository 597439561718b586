package analyzer

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

const routeMarker = "route"

// extractEntities scans every comment in the unit for a route annotation and
// pairs it with the interface declaration the comment precedes. Comments that
// carry no route token, point at nothing, or point at anything other than an
// interface declaration are filtered out rather than treated as errors; the
// same goes for individual members with unsupported type annotations. The
// input tree is never mutated.
func extractEntities(unit *SourceUnit) []Entity {
	root := unit.Tree.RootNode()
	declarations := declarationsByStart(root)

	var entities []Entity

	for _, comment := range commentNodes(root) {
		route, ok := routeFromComment(comment.Content(unit.Source))
		if !ok {
			continue
		}

		start, ok := attachmentStart(comment)
		if !ok {
			continue
		}

		decl, ok := declarations[start]
		if !ok || decl.Type() != "interface_declaration" {
			continue
		}

		entities = append(entities, Entity{
			Route:      route,
			Properties: interfaceProperties(decl, unit.Source),
		})
	}

	return entities
}

// declarationsByStart indexes the unit's top-level statements by start offset.
// Comment attachment is a positional association, so the lookup is keyed by
// position instead of walking the tree per comment.
func declarationsByStart(root *sitter.Node) map[uint32]*sitter.Node {
	declarations := make(map[uint32]*sitter.Node)
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		if child.Type() == "comment" {
			continue
		}
		declarations[child.StartByte()] = child
	}
	return declarations
}

// commentNodes collects every comment in the tree, including ones nested
// inside other declarations. Nested comments still tokenize like any other;
// they simply never match a top-level declaration position.
func commentNodes(node *sitter.Node) []*sitter.Node {
	var comments []*sitter.Node
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() == "comment" {
			comments = append(comments, child)
			continue
		}
		comments = append(comments, commentNodes(child)...)
	}
	return comments
}

// attachmentStart reports the position the comment is attached to: the start
// of the next sibling statement, skipping over further comments in a stack.
func attachmentStart(comment *sitter.Node) (uint32, bool) {
	sibling := comment.NextNamedSibling()
	for sibling != nil && sibling.Type() == "comment" {
		sibling = sibling.NextNamedSibling()
	}
	if sibling == nil {
		return 0, false
	}
	return sibling.StartByte(), true
}

// routeFromComment tokenizes the comment body on whitespace. The first token
// must contain the route marker and the second token is the route path,
// taken verbatim.
func routeFromComment(text string) (string, bool) {
	text = strings.TrimPrefix(text, "//")
	if strings.HasPrefix(text, "/*") {
		text = strings.TrimSuffix(strings.TrimPrefix(text, "/*"), "*/")
	}

	parts := strings.Fields(text)
	if len(parts) < 2 {
		return "", false
	}
	if !strings.Contains(parts[0], routeMarker) {
		return "", false
	}

	return parts[1], true
}

// interfaceProperties reduces the interface body to the members this system
// can represent: plain property signatures with an identifier name and an
// exact boolean/number/string annotation, in declaration order. Everything
// else is dropped member by member; an interface with no representable
// members still yields an empty (non-nil) property list.
func interfaceProperties(decl *sitter.Node, source []byte) []Property {
	properties := []Property{}

	body := decl.ChildByFieldName("body")
	if body == nil {
		return properties
	}

	for i := 0; i < int(body.NamedChildCount()); i++ {
		member := body.NamedChild(i)
		if member.Type() != "property_signature" {
			continue
		}
		if hasOptionalMarker(member) {
			continue
		}

		name := member.ChildByFieldName("name")
		annotation := member.ChildByFieldName("type")
		if name == nil || annotation == nil || name.Type() != "property_identifier" {
			continue
		}

		primitive, ok := primitiveFor(annotation, source)
		if !ok {
			continue
		}

		properties = append(properties, Property{
			Name: name.Content(source),
			Type: primitive,
		})
	}

	return properties
}

func hasOptionalMarker(member *sitter.Node) bool {
	for i := 0; i < int(member.ChildCount()); i++ {
		if member.Child(i).Type() == "?" {
			return true
		}
	}
	return false
}

// primitiveFor maps a type annotation to a PrimitiveType with an exact-match
// rule. Unions, references, arrays, literal object types and the rest of the
// predefined types (any, void, ...) all fall through to not-ok.
func primitiveFor(annotation *sitter.Node, source []byte) (PrimitiveType, bool) {
	if annotation.NamedChildCount() != 1 {
		return 0, false
	}

	typeNode := annotation.NamedChild(0)
	if typeNode.Type() != "predefined_type" {
		return 0, false
	}

	switch typeNode.Content(source) {
	case "boolean":
		return Boolean, true
	case "number":
		return Number, true
	case "string":
		return String, true
	}
	return 0, false
}
