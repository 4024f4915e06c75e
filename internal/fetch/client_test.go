package fetch

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestTextPlainBody(t *testing.T) {
	var gotUA, gotEncoding string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotEncoding = r.Header.Get("Accept-Encoding")
		io.WriteString(w, "<html>plain</html>")
	}))
	defer server.Close()

	client := New("SaintsDownloader", time.Minute)
	text, err := client.Text(context.Background(), server.URL)
	if err != nil {
		t.Fatal(err)
	}
	if text != "<html>plain</html>" {
		t.Fatalf("text = %q", text)
	}
	if gotUA != "SaintsDownloader" {
		t.Fatalf("user agent = %q", gotUA)
	}
	if gotEncoding != "gzip, deflate, br" {
		t.Fatalf("accept-encoding = %q", gotEncoding)
	}
}

func TestTextGzipBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		io.WriteString(zw, "<html>compressed</html>")
		zw.Close()
		w.Header().Set("Content-Encoding", "gzip")
		w.Write(buf.Bytes())
	}))
	defer server.Close()

	client := New("SaintsDownloader", time.Minute)
	text, err := client.Text(context.Background(), server.URL)
	if err != nil {
		t.Fatal(err)
	}
	if text != "<html>compressed</html>" {
		t.Fatalf("text = %q", text)
	}
}

func TestTextNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := New("SaintsDownloader", time.Minute)
	if _, err := client.Text(context.Background(), server.URL); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestTextInvalidUTF8(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte{0xff, 0xfe, 0xfd})
	}))
	defer server.Close()

	client := New("SaintsDownloader", time.Minute)
	if _, err := client.Text(context.Background(), server.URL); err == nil {
		t.Fatal("expected error for invalid UTF-8 body")
	}
}

func TestFetchStreamsRawBytes(t *testing.T) {
	payload := []byte{0x49, 0x44, 0x33, 0x00, 0x01} // ID3 header bytes, not text
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer server.Close()

	client := New("SaintsDownloader", time.Minute)
	body, err := client.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatal(err)
	}
	defer body.Close()

	got, err := io.ReadAll(body)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("body = %v, want %v", got, payload)
	}
}

func TestFetchConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := New("SaintsDownloader", time.Second)
	if _, err := client.Fetch(context.Background(), server.URL); err == nil {
		t.Fatal("expected connection error")
	}
}
