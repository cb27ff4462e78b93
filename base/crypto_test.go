package base

import "testing"

func TestCryptoHash_WordOrder(t *testing.T) {
	h := CryptoHashFromWords([4]uint64{1, 2, 3, 4})

	if h[7] != 1 || h[15] != 2 || h[23] != 3 || h[31] != 4 {
		t.Errorf("words not laid out big-endian in order: %x", h[:])
	}
	if got := h.Words(); got != [4]uint64{1, 2, 3, 4} {
		t.Errorf("Words() = %v, want [1 2 3 4]", got)
	}
}

func TestCryptoHash_ParseString(t *testing.T) {
	h := CryptoHashFromWords([4]uint64{0xdeadbeef, 0, ^uint64(0), 42})
	parsed, err := ParseCryptoHash(h.String())
	if err != nil {
		t.Fatalf("ParseCryptoHash: %v", err)
	}
	if parsed != h {
		t.Errorf("parsed %s, want %s", parsed, h)
	}

	if _, err := ParseCryptoHash("abcd"); err == nil {
		t.Error("short hash accepted")
	}
	if _, err := ParseCryptoHash("zz"); err == nil {
		t.Error("non-hex accepted")
	}
}

func TestCryptoHashOf(t *testing.T) {
	a1, err := CryptoHashOf(AmountFromAttos(Uint128FromHalves(1, 0)))
	if err != nil {
		t.Fatalf("CryptoHashOf: %v", err)
	}
	a2, err := CryptoHashOf(AmountFromAttos(Uint128FromHalves(1, 0)))
	if err != nil {
		t.Fatalf("CryptoHashOf: %v", err)
	}
	b, err := CryptoHashOf(AmountFromAttos(Uint128FromHalves(0, 1)))
	if err != nil {
		t.Fatalf("CryptoHashOf: %v", err)
	}

	if a1 != a2 {
		t.Error("equal values hashed differently")
	}
	if a1 == b {
		t.Error("different amounts hashed equally")
	}
}
