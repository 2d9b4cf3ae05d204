package common

import "testing"

func TestParseRONAmount_WithThousands(t *testing.T) {
	result := ParseRONAmount("9.465,00")
	if result == nil {
		t.Fatal("Expected a value, got nil")
	}
	if result.String() != "9465" {
		t.Errorf("Expected '9465', got '%s'", result.String())
	}
}

func TestParseRONAmount_Simple(t *testing.T) {
	result := ParseRONAmount("117,00")
	if result == nil {
		t.Fatal("Expected a value, got nil")
	}
	if result.StringFixed(2) != "117.00" {
		t.Errorf("Expected '117.00', got '%s'", result.StringFixed(2))
	}
}

func TestParseRONAmount_Malformed(t *testing.T) {
	if result := ParseRONAmount("abc"); result != nil {
		t.Errorf("Expected nil for malformed input, got '%s'", result.String())
	}
}

func TestIsAmountToken_Valid(t *testing.T) {
	for _, token := range []string{"9.465,00", "117,00", "1.234.567,89"} {
		if !IsAmountToken(token) {
			t.Errorf("Expected '%s' to be an amount token", token)
		}
	}
}

func TestIsAmountToken_Invalid(t *testing.T) {
	for _, token := range []string{"9465.00", "117", "117,0", "RON 117,00", "1.23,00"} {
		if IsAmountToken(token) {
			t.Errorf("Expected '%s' to not be an amount token", token)
		}
	}
}

func TestFindAmounts_SkipsEmbeddedDigitRuns(t *testing.T) {
	// The account number must not contribute phantom amounts.
	matches := FindAmounts("cont 5523999901094499 plata 117,00")
	if len(matches) != 1 {
		t.Fatalf("Expected 1 match, got %d", len(matches))
	}
	if matches[0].Value != "117,00" {
		t.Errorf("Expected '117,00', got '%s'", matches[0].Value)
	}
}

func TestFindAmounts_MultipleOccurrences(t *testing.T) {
	matches := FindAmounts("curs 4,97 total 1.250,00")
	if len(matches) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(matches))
	}
	if matches[1].Value != "1.250,00" {
		t.Errorf("Expected '1.250,00', got '%s'", matches[1].Value)
	}
}
