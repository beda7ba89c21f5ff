package password

import (
	"strings"
	"testing"
)

func TestHashAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	stored, err := Hash("secret1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if !strings.Contains(stored, ":") {
		t.Fatalf("stored value %q lacks salt separator", stored)
	}

	if !Verify("secret1", stored) {
		t.Fatal("correct password did not verify")
	}
	if Verify("secret2", stored) {
		t.Fatal("wrong password verified")
	}
}

func TestHash_NonDeterministic(t *testing.T) {
	t.Parallel()

	first, err := Hash("same-password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	second, err := Hash("same-password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if first == second {
		t.Fatal("two hashes of the same password are identical")
	}
	if !Verify("same-password", first) || !Verify("same-password", second) {
		t.Fatal("both stored values must verify against the original password")
	}
}

func TestVerify_MalformedStoredValues(t *testing.T) {
	t.Parallel()

	cases := []string{
		"",
		"no-separator",
		"salt:not-hex",
		"salt:abcd", // wrong derived-key length
	}
	for _, stored := range cases {
		if Verify("anything", stored) {
			t.Fatalf("malformed stored value %q verified", stored)
		}
	}
}
