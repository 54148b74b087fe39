package koremutake

import (
	"errors"
	"math/big"
	"math/rand/v2"
	"reflect"
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	for _, tc := range encodeVectors {
		got, err := Decode(tc.want)
		if err != nil {
			t.Fatalf("Decode(%q): %v", tc.want, err)
		}
		if got.Cmp(tc.n) != 0 {
			t.Fatalf("Decode(%q)=%s want %s", tc.want, got, tc.n)
		}
	}

	padded := []struct {
		s    string
		want int64
	}{
		{"baba", 0},
		{"bababababa", 0},
		{"babatre", 127},
		{"babakoremutake", 10610353957},
	}
	for _, tc := range padded {
		got, err := Decode(tc.s)
		if err != nil {
			t.Fatalf("Decode(%q): %v", tc.s, err)
		}
		if got.Int64() != tc.want {
			t.Fatalf("Decode(%q)=%s want %d", tc.s, got, tc.want)
		}
	}
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		s      string
		text   string
		offset int
	}{
		{"foo", "o", 2},
		{"kooremutake", "o", 2},
		{"bab", "b", 2},
		{"", "", 0},
		{"xyz", "xy", 0},
		{"b", "b", 0},
		{"tri", "tri", 0},
		{"batry", "try", 2},
		{"KOREMUTAKE", "KOREMUTAKE", 0},
		{"ko re", " re", 2},
		{"koremutake\n", "\n", 10},
		{"bäba", "bäba", 0},
	}
	for _, tc := range tests {
		t.Run(tc.s, func(t *testing.T) {
			n, err := Decode(tc.s)
			if err == nil {
				t.Fatalf("Decode(%q)=%s, want error", tc.s, n)
			}
			if !errors.Is(err, ErrFormat) {
				t.Fatalf("Decode(%q) err=%v, want ErrFormat", tc.s, err)
			}
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("Decode(%q) err=%T, want *FormatError", tc.s, err)
			}
			if fe.Text != tc.text || fe.Offset != tc.offset {
				t.Fatalf("Decode(%q) error at %q/%d, want %q/%d", tc.s, fe.Text, fe.Offset, tc.text, tc.offset)
			}
			if !strings.Contains(err.Error(), "not a valid koremutake string") {
				t.Fatalf("unexpected message %q", err.Error())
			}
			if Valid(tc.s) {
				t.Fatalf("Valid(%q)=true", tc.s)
			}
		})
	}
}

func TestDecodeUint64(t *testing.T) {
	for _, tc := range encodeVectors {
		got, err := DecodeUint64(tc.want)
		if err != nil {
			t.Fatalf("DecodeUint64(%q): %v", tc.want, err)
		}
		if got != tc.n.Uint64() {
			t.Fatalf("DecodeUint64(%q)=%d want %s", tc.want, got, tc.n)
		}
	}

	maxU64 := EncodeUint64(^uint64(0), 0)
	if got, err := DecodeUint64(maxU64); err != nil || got != ^uint64(0) {
		t.Fatalf("DecodeUint64(%q)=%d,%v", maxU64, got, err)
	}
	// leading zero syllables never overflow
	if got, err := DecodeUint64(strings.Repeat("ba", 40) + maxU64); err != nil || got != ^uint64(0) {
		t.Fatalf("DecodeUint64(padded max)=%d,%v", got, err)
	}

	tooBig, err := Encode(new(big.Int).Lsh(big.NewInt(1), 64))
	if err != nil {
		t.Fatalf("Encode(2^64): %v", err)
	}
	if _, err := DecodeUint64(tooBig); !errors.Is(err, ErrOverflow) {
		t.Fatalf("DecodeUint64(%q) err=%v want ErrOverflow", tooBig, err)
	}
	// format errors take precedence over overflow
	if _, err := DecodeUint64(tooBig + "x"); !errors.Is(err, ErrFormat) {
		t.Fatalf("DecodeUint64(%q) err=%v want ErrFormat", tooBig+"x", err)
	}
}

func TestSplit(t *testing.T) {
	got, err := Split("koremutake")
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if want := []string{"ko", "re", "mu", "ta", "ke"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Split=%v want %v", got, want)
	}
	got, err = Split("brastrtre")
	if err == nil {
		t.Fatalf("Split(brastrtre)=%v, want error", got)
	}
	got, err = Split("brastetre")
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if want := []string{"bra", "ste", "tre"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Split=%v want %v", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	check := func(n *big.Int) {
		t.Helper()
		s, err := Encode(n)
		if err != nil {
			t.Fatalf("Encode(%s): %v", n, err)
		}
		got, err := Decode(s)
		if err != nil {
			t.Fatalf("Decode(%q): %v", s, err)
		}
		if got.Cmp(n) != 0 {
			t.Fatalf("Decode(Encode(%s))=%s via %q", n, got, s)
		}
	}

	for i := int64(0); i < 1<<15; i++ {
		check(big.NewInt(i))
	}

	// every power of two and its neighbours, well past 64 bits
	for bits := 1; bits <= 200; bits++ {
		p := new(big.Int).Lsh(big.NewInt(1), uint(bits))
		check(p)
		check(minus1(p))
		check(new(big.Int).Add(p, big.NewInt(1)))
	}

	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 5000; i++ {
		check(new(big.Int).SetUint64(rng.Uint64N(1 << 48)))
	}
	for i := 0; i < 200; i++ {
		n := new(big.Int).SetUint64(rng.Uint64())
		n.Lsh(n, uint(rng.IntN(300)))
		n.Add(n, new(big.Int).SetUint64(rng.Uint64()))
		check(n)
	}
}

func TestLeadingZeroInvariance(t *testing.T) {
	for _, s := range []string{"ba", "tre", "koremutake", "bebababa", EncodeUint64(^uint64(0), 0)} {
		want, err := Decode(s)
		if err != nil {
			t.Fatalf("Decode(%q): %v", s, err)
		}
		for k := 1; k <= 20; k++ {
			padded := strings.Repeat(Syllable(0), k) + s
			got, err := Decode(padded)
			if err != nil {
				t.Fatalf("Decode(%q): %v", padded, err)
			}
			if got.Cmp(want) != 0 {
				t.Fatalf("Decode(%q)=%s want %s", padded, got, want)
			}
		}
	}
}

func TestDecodeConcurrent(t *testing.T) {
	done := make(chan error, 8)
	for g := 0; g < 8; g++ {
		go func(seed uint64) {
			rng := rand.New(rand.NewPCG(seed, seed))
			for i := 0; i < 1000; i++ {
				v := rng.Uint64()
				got, err := DecodeUint64(EncodeUint64(v, 0))
				if err != nil {
					done <- err
					return
				}
				if got != v {
					done <- errors.New("round-trip mismatch")
					return
				}
			}
			done <- nil
		}(uint64(g))
	}
	for g := 0; g < 8; g++ {
		if err := <-done; err != nil {
			t.Fatal(err)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	long := strings.Repeat("koremutake", 100)
	b.Run("short", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = Decode("koremutake")
		}
	})
	b.Run("uint64", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = DecodeUint64("koremutake")
		}
	})
	b.Run("long", func(b *testing.B) {
		b.SetBytes(int64(len(long)))
		for i := 0; i < b.N; i++ {
			_, _ = Decode(long)
		}
	})
}
