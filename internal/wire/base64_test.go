package wire

import (
	"encoding/json"
	"testing"
)

func TestBase64StringRoundTrip(t *testing.T) {
	want := Base64String("hello, tutanota")
	data, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got Base64String
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if string(got) != string(want) {
		t.Fatalf("got = %q, want %q", got, want)
	}
}

func TestBase64URLRoundTrip(t *testing.T) {
	want := Base64URL("some-access-token-bytes")
	data, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got Base64URL
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if string(got) != string(want) {
		t.Fatalf("got = %q, want %q", got, want)
	}
}

func TestBase64URLAcceptsPaddedInput(t *testing.T) {
	// Standard URL-safe base64 with padding for 2 bytes: "ab" -> "YWI="
	var got Base64URL
	if err := json.Unmarshal([]byte(`"YWI="`), &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if string(got) != "ab" {
		t.Fatalf("got = %q, want %q", got, "ab")
	}
}

func TestBase64URLString(t *testing.T) {
	b := Base64URL("xyz")
	if b.String() == "" {
		t.Fatal("String() should not be empty")
	}
}
