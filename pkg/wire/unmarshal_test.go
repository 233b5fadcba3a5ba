package wire

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUnmarshalResponse_Simple(t *testing.T) {
	input := "HTTP/1.1 200 OK\r\n" +
		"Server: RustRawHTTP/1.0\r\n" +
		"Content-Length: 11\r\n" +
		"Content-Type: text/plain; charset=utf-8\r\n" +
		"Connection: close\r\n" +
		"\r\n" +
		"hello world"

	resp, err := UnmarshalResponse([]byte(input))
	if err != nil {
		t.Fatalf("UnmarshalResponse() error = %v", err)
	}

	want := &Response{
		Version:    "HTTP/1.1",
		StatusCode: 200,
		Reason:     "OK",
		Headers: Headers{
			{Key: "Server", Value: "RustRawHTTP/1.0"},
			{Key: "Content-Length", Value: "11"},
			{Key: "Content-Type", Value: "text/plain; charset=utf-8"},
			{Key: "Connection", Value: "close"},
		},
		Body: []byte("hello world"),
	}
	if diff := cmp.Diff(want, resp); diff != "" {
		t.Errorf("UnmarshalResponse() mismatch (-want +got):\n%s", diff)
	}
}

func TestUnmarshalResponse_MultiWordReason(t *testing.T) {
	resp, err := UnmarshalResponse([]byte("HTTP/1.1 405 Method Not Allowed\r\n\r\n"))
	if err != nil {
		t.Fatalf("UnmarshalResponse() error = %v", err)
	}
	if resp.Reason != "Method Not Allowed" {
		t.Errorf("Reason = %q, want Method Not Allowed", resp.Reason)
	}
}

func TestUnmarshalResponse_NoReason(t *testing.T) {
	resp, err := UnmarshalResponse([]byte("HTTP/1.1 200\r\n\r\n"))
	if err != nil {
		t.Fatalf("UnmarshalResponse() error = %v", err)
	}
	if resp.StatusCode != 200 || resp.Reason != "" {
		t.Errorf("got code=%d reason=%q", resp.StatusCode, resp.Reason)
	}
}

func TestUnmarshalResponse_NoContentLengthReadsToEnd(t *testing.T) {
	resp, err := UnmarshalResponse([]byte("HTTP/1.1 200 OK\r\nConnection: close\r\n\r\nrest of stream"))
	if err != nil {
		t.Fatalf("UnmarshalResponse() error = %v", err)
	}
	if string(resp.Body) != "rest of stream" {
		t.Errorf("Body = %q", resp.Body)
	}
}

func TestUnmarshalResponse_TruncatedBody(t *testing.T) {
	_, err := UnmarshalResponse([]byte("HTTP/1.1 200 OK\r\nContent-Length: 100\r\n\r\nshort"))
	if err == nil {
		t.Error("expected error for truncated body")
	}
}

func TestUnmarshalResponse_InvalidStatusCode(t *testing.T) {
	_, err := UnmarshalResponse([]byte("HTTP/1.1 abc OK\r\n\r\n"))
	if err == nil {
		t.Error("expected error for non-numeric status code")
	}
}

func TestUnmarshalResponse_MalformedHeader(t *testing.T) {
	_, err := UnmarshalResponse([]byte("HTTP/1.1 200 OK\r\nno colon here\r\n\r\n"))
	if err == nil {
		t.Error("expected error for header without colon")
	}
}

func TestUnmarshalResponse_Empty(t *testing.T) {
	_, err := UnmarshalResponse(nil)
	if err == nil {
		t.Error("expected error for empty input")
	}
}

func TestUnmarshalResponse_RoundTrip(t *testing.T) {
	orig := &Response{
		Version:    "HTTP/1.1",
		StatusCode: 404,
		Reason:     "Not Found",
		Headers: Headers{
			{Key: "Server", Value: "RustRawHTTP/1.0"},
			{Key: "Content-Length", Value: "32"},
			{Key: "Content-Type", Value: "text/plain; charset=utf-8"},
			{Key: "Connection", Value: "close"},
		},
		Body: []byte("The requested file was not found"),
	}

	data, err := Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	parsed, err := UnmarshalResponse(data)
	if err != nil {
		t.Fatalf("UnmarshalResponse() error = %v", err)
	}
	if diff := cmp.Diff(orig, parsed); diff != "" {
		t.Errorf("round trip mismatch (-orig +parsed):\n%s", diff)
	}
}
