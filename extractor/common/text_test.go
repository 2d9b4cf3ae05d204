package common

import "testing"

func TestNormalizeRO_FoldsDiacritics(t *testing.T) {
	result := NormalizeRO("Tranzacție la: Brutăria Șapte Țări")
	expected := "tranzactie la: brutaria sapte tari"
	if result != expected {
		t.Errorf("Expected '%s', got '%s'", expected, result)
	}
}

func TestNormalizeRO_PlainASCII(t *testing.T) {
	if result := NormalizeRO("Detalii Tranzactie"); result != "detalii tranzactie" {
		t.Errorf("Expected 'detalii tranzactie', got '%s'", result)
	}
}

func TestCleanSpaces_CollapsesRuns(t *testing.T) {
	if result := CleanSpaces("  a \t b\n c  "); result != "a b c" {
		t.Errorf("Expected 'a b c', got '%s'", result)
	}
}

func TestValueAfterColon_Simple(t *testing.T) {
	if result := ValueAfterColon("Terminal:  LIDL  BUCURESTI"); result != "LIDL BUCURESTI" {
		t.Errorf("Expected 'LIDL BUCURESTI', got '%s'", result)
	}
}

func TestValueAfterColon_NoColon(t *testing.T) {
	if result := ValueAfterColon("no colon here"); result != "" {
		t.Errorf("Expected empty string, got '%s'", result)
	}
}

func TestNormalizeIBANLike_StripsSeparatorsAndCase(t *testing.T) {
	result := NormalizeIBANLike("ro41 ingb-0000 9999 0261 9755")
	expected := "RO41INGB0000999902619755"
	if result != expected {
		t.Errorf("Expected '%s', got '%s'", expected, result)
	}
}
