package astview

import (
	"testing"

	"github.com/shapestone/shape-core/pkg/ast"

	"github.com/shapestone/shape-serve/pkg/wire"
)

func TestRequestToNode(t *testing.T) {
	req := &wire.Request{
		Method:  "GET",
		Path:    "/index.html",
		Version: "HTTP/1.1",
		Headers: wire.Headers{{Key: "Host", Value: "example.com"}},
	}

	node := RequestToNode(req)

	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		t.Fatalf("expected ObjectNode, got %T", node)
	}

	props := obj.Properties()
	if lit := props["type"].(*ast.LiteralNode); lit.Value() != "request" {
		t.Errorf("type = %v, want request", lit.Value())
	}
	if lit := props["method"].(*ast.LiteralNode); lit.Value() != "GET" {
		t.Errorf("method = %v, want GET", lit.Value())
	}
	if lit := props["path"].(*ast.LiteralNode); lit.Value() != "/index.html" {
		t.Errorf("path = %v, want /index.html", lit.Value())
	}
	if _, ok := props["body"]; ok {
		t.Error("body property present for bodyless request")
	}
}

func TestResponseToNode(t *testing.T) {
	resp := &wire.Response{
		Version:    "HTTP/1.1",
		StatusCode: 404,
		Reason:     "Not Found",
		Headers:    wire.Headers{{Key: "Connection", Value: "close"}},
		Body:       []byte("The requested file was not found"),
	}

	node := ResponseToNode(resp)

	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		t.Fatalf("expected ObjectNode, got %T", node)
	}

	props := obj.Properties()
	if lit := props["statusCode"].(*ast.LiteralNode); lit.Value() != int64(404) {
		t.Errorf("statusCode = %v, want 404", lit.Value())
	}
	if lit := props["body"].(*ast.LiteralNode); lit.Value() != "The requested file was not found" {
		t.Errorf("body = %v", lit.Value())
	}
}

func TestFlatten(t *testing.T) {
	req := &wire.Request{
		Method:  "GET",
		Path:    "/notes.txt",
		Version: "HTTP/1.1",
		Headers: wire.Headers{{Key: "Host", Value: "example.com"}},
	}

	v, err := Flatten(RequestToNode(req))
	if err != nil {
		t.Fatalf("Flatten() error = %v", err)
	}

	m, ok := v.(map[string]interface{})
	if !ok {
		t.Fatalf("Flatten() = %T, want map", v)
	}
	if m["method"] != "GET" || m["path"] != "/notes.txt" {
		t.Errorf("flattened request = %v", m)
	}

	headers, ok := m["headers"].([]interface{})
	if !ok || len(headers) != 1 {
		t.Fatalf("headers = %v", m["headers"])
	}
	h := headers[0].(map[string]interface{})
	if h["key"] != "Host" || h["value"] != "example.com" {
		t.Errorf("header = %v", h)
	}
}

func TestNodeProperty(t *testing.T) {
	node := RequestToNode(&wire.Request{Method: "GET", Path: "/", Version: "HTTP/1.1"})

	got, err := NodeProperty(node, "path")
	if err != nil {
		t.Fatalf("NodeProperty() error = %v", err)
	}
	if got != "/" {
		t.Errorf("path = %q, want /", got)
	}

	if _, err := NodeProperty(node, "nope"); err == nil {
		t.Error("expected error for missing property")
	}
}
