// Package astview maps wire messages to shape-core AST nodes.
//
// The server's trace mode logs each request/response exchange as a
// structured object; the AST shape matches what other shapestone tooling
// expects:
//
// Request:
//
//	{ "type": "request", "method": "GET", "path": "/index.html",
//	  "version": "HTTP/1.1",
//	  "headers": [{"key": "Host", "value": "example.com"}, ...],
//	  "body": "..." }
//
// Response:
//
//	{ "type": "response", "version": "HTTP/1.1", "statusCode": 200,
//	  "reason": "OK",
//	  "headers": [{"key": "Content-Type", "value": "text/plain"}, ...],
//	  "body": "..." }
package astview

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"

	"github.com/shapestone/shape-serve/pkg/wire"
)

var zeroPos = ast.Position{}

// RequestToNode converts a wire.Request to an AST ObjectNode.
func RequestToNode(req *wire.Request) ast.SchemaNode {
	props := map[string]ast.SchemaNode{
		"type":    ast.NewLiteralNode("request", zeroPos),
		"method":  ast.NewLiteralNode(req.Method, zeroPos),
		"path":    ast.NewLiteralNode(req.Path, zeroPos),
		"version": ast.NewLiteralNode(req.Version, zeroPos),
		"headers": headersToNode(req.Headers),
	}

	if req.Body != nil {
		props["body"] = ast.NewLiteralNode(string(req.Body), zeroPos)
	}

	return ast.NewObjectNode(props, zeroPos)
}

// ResponseToNode converts a wire.Response to an AST ObjectNode.
func ResponseToNode(resp *wire.Response) ast.SchemaNode {
	props := map[string]ast.SchemaNode{
		"type":       ast.NewLiteralNode("response", zeroPos),
		"version":    ast.NewLiteralNode(resp.Version, zeroPos),
		"statusCode": ast.NewLiteralNode(int64(resp.StatusCode), zeroPos),
		"reason":     ast.NewLiteralNode(resp.Reason, zeroPos),
		"headers":    headersToNode(resp.Headers),
	}

	if resp.Body != nil {
		props["body"] = ast.NewLiteralNode(string(resp.Body), zeroPos)
	}

	return ast.NewObjectNode(props, zeroPos)
}

func headersToNode(headers wire.Headers) ast.SchemaNode {
	elements := make([]ast.SchemaNode, len(headers))
	for i, h := range headers {
		elements[i] = ast.NewObjectNode(map[string]ast.SchemaNode{
			"key":   ast.NewLiteralNode(h.Key, zeroPos),
			"value": ast.NewLiteralNode(h.Value, zeroPos),
		}, zeroPos)
	}
	return ast.NewArrayDataNode(elements, zeroPos)
}

// Flatten converts an AST node back to plain Go values (maps, slices,
// scalars) so structured loggers can serialize it.
func Flatten(node ast.SchemaNode) (interface{}, error) {
	switch n := node.(type) {
	case *ast.LiteralNode:
		return n.Value(), nil
	case *ast.ObjectNode:
		props := n.Properties()
		out := make(map[string]interface{}, len(props))
		for key, child := range props {
			v, err := Flatten(child)
			if err != nil {
				return nil, err
			}
			out[key] = v
		}
		return out, nil
	case *ast.ArrayDataNode:
		elements := n.Elements()
		out := make([]interface{}, 0, len(elements))
		for _, elem := range elements {
			v, err := Flatten(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("astview: unsupported node %T", node)
	}
}

// NodeProperty extracts a string property from an ObjectNode, for log
// formatting and tests.
func NodeProperty(node ast.SchemaNode, key string) (string, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return "", fmt.Errorf("astview: expected ObjectNode, got %T", node)
	}
	prop, ok := obj.Properties()[key]
	if !ok {
		return "", fmt.Errorf("astview: missing %q property", key)
	}
	lit, ok := prop.(*ast.LiteralNode)
	if !ok {
		return "", fmt.Errorf("astview: %q is not a literal", key)
	}
	s, ok := lit.Value().(string)
	if !ok {
		return "", fmt.Errorf("astview: %q is not a string", key)
	}
	return s, nil
}
