package dictionary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resultPage = `<!DOCTYPE html>
<html><body>
<div class="container">
  <div class="ankat">
    <div class="row terim">
      <div class="col-md-4"><b> Sözleşme </b></div>
      <div class="col-md-8"> İki veya daha çok kişi arasında <i>hukuki</i> sonuç doğuran anlaşma. </div>
    </div>
    <div class="row terim">
      <div class="col-md-4">Sözleşmenin feshi</div>
      <div class="col-md-8">Sözleşmeye son verilmesi.</div>
    </div>
    <div class="row terim">
      <div class="col-md-4">IŞIK</div>
      <div class="col-md-8">Aydınlatma.</div>
    </div>
    <div class="row terim">
      <div class="col-md-4">Eksik blok</div>
    </div>
  </div>
</div>
</body></html>`

func TestParseEntries(t *testing.T) {
	tests := []struct {
		name string
		page string
		want []Entry
	}{
		{
			name: "result page",
			page: resultPage,
			want: []Entry{
				{Term: "Sözleşme", Definition: "İki veya daha çok kişi arasında hukuki sonuç doğuran anlaşma."},
				{Term: "Sözleşmenin feshi", Definition: "Sözleşmeye son verilmesi."},
				{Term: "IŞIK", Definition: "Aydınlatma."},
			},
		},
		{
			name: "page without results container",
			page: `<html><body><div class="terim"><div class="col-md-4">a</div><div class="col-md-8">b</div></div></body></html>`,
			want: nil,
		},
		{
			name: "empty body",
			page: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEntries(strings.NewReader(tt.page))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatch(t *testing.T) {
	entries := []Entry{
		{Term: "Sözleşme", Definition: "anlaşma"},
		{Term: "IŞIK", Definition: "aydınlatma"},
		{Term: "İcra", Definition: "yerine getirme"},
	}

	tests := []struct {
		term   string
		want   string
		wantOK bool
	}{
		{term: "sözleşme", want: "anlaşma", wantOK: true},
		{term: "SÖZLEŞME", want: "anlaşma", wantOK: true},
		{term: "ışık", want: "aydınlatma", wantOK: true},
		{term: "icra", want: "yerine getirme", wantOK: true},
		{term: "sözleşmeler", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			got, ok := Match(entries, tt.term)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_Lookup(t *testing.T) {
	tests := []struct {
		name               string
		term               string
		insecureSkipVerify bool
		handler            func(t *testing.T, w http.ResponseWriter, r *http.Request)
		want               string
		wantOK             bool
		wantErr            bool
	}{
		{
			name:               "found on self-signed server",
			term:               "sözleşme",
			insecureSkipVerify: true,
			handler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/s%C3%B6zle%C5%9Fme", r.URL.EscapedPath())
				_, _ = w.Write([]byte(resultPage))
			},
			want:   "İki veya daha çok kişi arasında hukuki sonuç doğuran anlaşma.",
			wantOK: true,
		},
		{
			name:               "multi word term is path escaped",
			term:               "sözleşmenin feshi",
			insecureSkipVerify: true,
			handler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/sözleşmenin feshi", r.URL.Path)
				_, _ = w.Write([]byte(resultPage))
			},
			want:   "Sözleşmeye son verilmesi.",
			wantOK: true,
		},
		{
			name:               "no matching label",
			term:               "geçerli",
			insecureSkipVerify: true,
			handler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(resultPage))
			},
		},
		{
			name:               "non-OK status is a miss",
			term:               "sözleşme",
			insecureSkipVerify: true,
			handler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
		},
		{
			name:               "certificate verification enabled",
			term:               "sözleşme",
			insecureSkipVerify: false,
			handler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(resultPage))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tt.handler(t, w, r)
			}))
			defer server.Close()

			client := NewClient(Config{BaseURL: server.URL, InsecureSkipVerify: tt.insecureSkipVerify})
			got, ok, err := client.Lookup(context.Background(), tt.term)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_URL(t *testing.T) {
	client := NewClient(Config{})
	assert.Equal(t, "https://sozluk.adalet.gov.tr/s%C3%B6zle%C5%9Fme", client.URL("sözleşme"))
	assert.Equal(t, "https://sozluk.adalet.gov.tr/kira%20s%C3%B6zle%C5%9Fmesi", client.URL("kira sözleşmesi"))
}
