package export

import "testing"

func TestEnvelope_RoundTrip(t *testing.T) {
	pt := []byte(`{"x25519PrivateKey":"a","ed25519PrivateKey":"b"}`)

	sealed, err := seal("correct horse", pt)
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	got, err := open("correct horse", sealed)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if string(got) != string(pt) {
		t.Fatalf("round trip mismatch: %s", got)
	}
}

func TestEnvelope_WrongPassphrase(t *testing.T) {
	sealed, err := seal("correct", []byte("secret"))
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	if _, err := open("wrong", sealed); err == nil {
		t.Fatal("expected error with wrong passphrase")
	}
}

func TestEnvelope_FutureVersionRejected(t *testing.T) {
	if _, err := open("any", []byte(`{"v":99}`)); err == nil {
		t.Fatal("expected error for unsupported version")
	}
}
