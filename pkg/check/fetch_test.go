package check

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func remoteDoc(url string) string {
	return fmt.Sprintf(`<?xml version="1.0"?>
<person xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:noNamespaceSchemaLocation=%q>
  <name>Ada</name>
</person>`, url)
}

func TestRemoteSchemaFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, personXSD)
	}))
	defer srv.Close()

	dir := t.TempDir()
	xmlPath := writeFile(t, dir, "a.xml", remoteDoc(srv.URL+"/person.xsd"))

	var buf bytes.Buffer
	res := newTestRunner(&buf).CheckFile(xmlPath)

	if res.Outcome != Valid {
		t.Fatalf("expected Valid from remote schema, got %s (err: %v)", res.Outcome, res.Err)
	}
}

func TestRemoteSchemaNotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	dir := t.TempDir()
	xmlPath := writeFile(t, dir, "a.xml", remoteDoc(srv.URL+"/missing.xsd"))

	var buf bytes.Buffer
	res := newTestRunner(&buf).CheckFile(xmlPath)

	if res.Outcome != SchemaUnavailable {
		t.Fatalf("expected SchemaUnavailable on 404, got %s", res.Outcome)
	}
	out := buf.String()
	if !strings.Contains(out, "[ERROR]") || !strings.Contains(out, srv.URL) {
		t.Errorf("expected fetch error naming the URL, got: %q", out)
	}
}

func TestRemoteSchemaTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer func() {
		close(release)
		srv.Close()
	}()

	dir := t.TempDir()
	xmlPath := writeFile(t, dir, "a.xml", remoteDoc(srv.URL+"/slow.xsd"))

	var buf bytes.Buffer
	runner := newTestRunner(&buf)
	runner.FetchTimeout = 50 * time.Millisecond
	res := runner.CheckFile(xmlPath)

	if res.Outcome != SchemaUnavailable {
		t.Fatalf("expected SchemaUnavailable on timeout, got %s", res.Outcome)
	}
}

func TestRemoteSchemaMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "this is not an XSD <<<")
	}))
	defer srv.Close()

	dir := t.TempDir()
	xmlPath := writeFile(t, dir, "a.xml", remoteDoc(srv.URL+"/junk.xsd"))

	var buf bytes.Buffer
	res := newTestRunner(&buf).CheckFile(xmlPath)

	if res.Outcome != SchemaUnavailable {
		t.Fatalf("expected SchemaUnavailable on malformed XSD, got %s", res.Outcome)
	}
	if !strings.Contains(buf.String(), "invalid XSD format from") {
		t.Errorf("expected malformed-schema error, got: %q", buf.String())
	}
}
