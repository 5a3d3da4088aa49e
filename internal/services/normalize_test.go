package services

import (
	"strings"
	"testing"
)

func TestDecodePayload_Aliases(t *testing.T) {
	cases := []struct {
		name string
		body string
		want Payload
	}{
		{
			name: "canonical names",
			body: `{"full_name":"Ada","email":"a@b.co","message":"hi","keep_updated":true}`,
			want: Payload{FullName: "Ada", Email: "a@b.co", Message: "hi", KeepUpdated: true},
		},
		{
			name: "camelCase revision",
			body: `{"fullName":"Ada","email":"a@b.co","interests":"analytics","keepUpdated":true}`,
			want: Payload{FullName: "Ada", Email: "a@b.co", Message: "analytics", KeepUpdated: true},
		},
		{
			name: "short-name revision",
			body: `{"name":"Ada","email":"a@b.co","reason":"why not","updates":false,"telegram":"@ada"}`,
			want: Payload{FullName: "Ada", Email: "a@b.co", Message: "why not", TelegramHandle: "ada"},
		},
		{
			name: "newsletter alias",
			body: `{"name":"Ada","email":"a@b.co","newsletter":true}`,
			want: Payload{FullName: "Ada", Email: "a@b.co", KeepUpdated: true},
		},
		{
			name: "subscribed alias",
			body: `{"name":"Ada","email":"a@b.co","subscribed":true}`,
			want: Payload{FullName: "Ada", Email: "a@b.co", KeepUpdated: true},
		},
		{
			name: "canonical wins over alias",
			body: `{"full_name":"Canonical","name":"Alias","email":"a@b.co"}`,
			want: Payload{FullName: "Canonical", Email: "a@b.co"},
		},
		{
			name: "unset bools default false",
			body: `{"full_name":"Ada","email":"a@b.co"}`,
			want: Payload{FullName: "Ada", Email: "a@b.co"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodePayload(strings.NewReader(tc.body))
			if err != nil {
				t.Fatalf("DecodePayload: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestDecodePayload_BadJSON(t *testing.T) {
	if _, err := DecodePayload(strings.NewReader("{not json")); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestNormEmail(t *testing.T) {
	cases := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"ada@example.com", "ada@example.com", true},
		{"  ADA@Example.COM  ", "ada@example.com", true},
		{"", "", true}, // empty is the caller's problem
		{"   ", "", true},
		{"no-at-sign", "no-at-sign", false},
		{"a@b", "a@b", false},         // no dot in domain
		{"a@b.", "a@b.", false},       // nothing after the dot
		{"a b@c.d", "a b@c.d", false}, // space
		{"a@@b.co", "a@@b.co", false}, // double @
		{"a@b.co", "a@b.co", true},
	}
	for _, tc := range cases {
		got, ok := NormEmail(tc.in)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("NormEmail(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestNormTelegram(t *testing.T) {
	cases := map[string]string{
		"@ada":             "ada",
		"t.me/ada":         "ada",
		"https://t.me/ada": "ada",
		"http://t.me/ada":  "ada",
		"  @ada  ":         "ada",
		"ada":              "ada",
		"":                 "",
	}
	for in, want := range cases {
		if got := NormTelegram(in); got != want {
			t.Errorf("NormTelegram(%q) = %q, want %q", in, got, want)
		}
	}
}
