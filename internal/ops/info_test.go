package ops

import (
	"testing"
)

func TestInfo_EuroSign(t *testing.T) {
	env := testEnv(t)

	out, err := Info(env, InfoInput{Char: "€"})
	if err != nil {
		t.Fatalf("Info() error = %v", err)
	}

	if out.Name != "Euro Sign" {
		t.Errorf("Name = %q, want %q", out.Name, "Euro Sign")
	}
	if out.Codepoint != "U+20AC" {
		t.Errorf("Codepoint = %q, want U+20AC", out.Codepoint)
	}
	if out.Decimal != 8364 {
		t.Errorf("Decimal = %d, want 8364", out.Decimal)
	}
	if out.UTF8 != "0xE2 0x82 0xAC" {
		t.Errorf("UTF8 = %q, want %q", out.UTF8, "0xE2 0x82 0xAC")
	}
	if out.UTF16 != "0x20AC" {
		t.Errorf("UTF16 = %q, want %q", out.UTF16, "0x20AC")
	}
	if out.HTMLEntity != "&#x20AC;" {
		t.Errorf("HTMLEntity = %q, want %q", out.HTMLEntity, "&#x20AC;")
	}
	if out.Block != "Currency Symbols" {
		t.Errorf("Block = %q, want %q", out.Block, "Currency Symbols")
	}
	if !out.Indexed {
		t.Errorf("Indexed = false, want true")
	}
	if out.Collected {
		t.Errorf("Collected = true, want false")
	}

	found := false
	for _, c := range out.Categories {
		if c == "Currency Symbols" {
			found = true
		}
	}
	if !found {
		t.Errorf("Categories = %v, want to include Currency Symbols", out.Categories)
	}
}

func TestInfo_SupplementaryPlaneEncodings(t *testing.T) {
	env := testEnv(t)

	out, err := Info(env, InfoInput{Char: "U+1D6C2"})
	if err != nil {
		t.Fatalf("Info() error = %v", err)
	}
	if out.UTF16 != "0xD835 0xDEC2" {
		t.Errorf("UTF16 = %q, want surrogate pair 0xD835 0xDEC2", out.UTF16)
	}
	if out.UTF8 != "0xF0 0x9D 0x9B 0x82" {
		t.Errorf("UTF8 = %q, want four bytes", out.UTF8)
	}
}

func TestInfo_TouchFeedsRecent(t *testing.T) {
	env := testEnv(t)

	if _, err := Info(env, InfoInput{Char: "A", Touch: true}); err != nil {
		t.Fatalf("Info() error = %v", err)
	}
	if _, err := Info(env, InfoInput{Char: "€", Touch: true}); err != nil {
		t.Fatalf("Info() error = %v", err)
	}
	// Without Touch the recent list is left alone
	if _, err := Info(env, InfoInput{Char: "B"}); err != nil {
		t.Fatalf("Info() error = %v", err)
	}

	rec, err := Recent(env)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(rec.Results) != 2 {
		t.Fatalf("Recent length = %d, want 2", len(rec.Results))
	}
	if rec.Results[0].Char != "€" || rec.Results[1].Char != "A" {
		t.Errorf("Recent = %+v, want [€ A]", rec.Results)
	}
}

func TestInfo_UnindexedCodepoint(t *testing.T) {
	env := testEnv(t)

	out, err := Info(env, InfoInput{Char: "U+1F600"})
	if err != nil {
		t.Fatalf("Info() error = %v", err)
	}
	if out.Indexed {
		t.Errorf("Indexed = true, want false")
	}
	if out.Name == "" {
		t.Errorf("Name is empty, want a resolved display name")
	}
	if out.Block != "Emoticons" {
		t.Errorf("Block = %q, want Emoticons", out.Block)
	}
}
