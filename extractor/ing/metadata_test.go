package ing

import "testing"

func TestExtractDetailsFromLines(t *testing.T) {
	lines := []string{
		"Extras de cont",
		"Titular cont: DL Ion Popescu Numar cont: RO49INGB0000999901234567",
		"Tip cont: Cont Curent Moneda: RON",
		"Pentru perioada: 31 decembrie 2025 - 31 ianuarie 2026",
	}

	details := ExtractDetailsFromLines(lines)
	if details.AccountHolder != "DL Ion Popescu" {
		t.Errorf("holder = %q", details.AccountHolder)
	}
	if details.AccountNumber != "RO49INGB0000999901234567" {
		t.Errorf("number = %q", details.AccountNumber)
	}
	if details.AccountType != "Cont Curent" {
		t.Errorf("type = %q", details.AccountType)
	}
	if details.StatementPeriod != "31/12/2025 - 31/01/2026" {
		t.Errorf("period = %q", details.StatementPeriod)
	}
	if !details.Complete() {
		t.Error("details should be complete")
	}
}

func TestExtractDetailsFromLines_FirstValueWins(t *testing.T) {
	lines := []string{
		"Titular cont: DL Ion Popescu",
		"Titular cont: Alt Nume",
	}

	details := ExtractDetailsFromLines(lines)
	if details.AccountHolder != "DL Ion Popescu" {
		t.Errorf("holder = %q", details.AccountHolder)
	}
}

func TestExtractDetailsFromLines_SlashPeriodPassesThrough(t *testing.T) {
	details := ExtractDetailsFromLines([]string{
		"Pentru perioada: 01/01/2026 - 31/01/2026",
	})
	if details.StatementPeriod != "01/01/2026 - 31/01/2026" {
		t.Errorf("period = %q", details.StatementPeriod)
	}
}

func TestExtractDetailsText(t *testing.T) {
	text := "Extras de cont\nTitular cont: DL Ion Popescu\n\nNumar cont: RO49INGB0000999901234567\nTip cont: Cont Curent\nPentru perioada: 31 decembrie 2025 - 31 ianuarie 2026\n"

	details := ExtractDetailsText(text)
	if !details.Complete() {
		t.Fatalf("details should be complete, got %+v", details)
	}
	if details.StatementPeriod != "31/12/2025 - 31/01/2026" {
		t.Errorf("period = %q", details.StatementPeriod)
	}
}

func TestLooksLikeStatementText(t *testing.T) {
	cases := []struct {
		name string
		text string
		want bool
	}{
		{
			name: "table header present",
			text: "Data Detalii tranzactie Debit Credit",
			want: true,
		},
		{
			name: "marker with period",
			text: "Extras de cont\nPentru perioada: 01/01/2026 - 31/01/2026",
			want: true,
		},
		{
			name: "marker without period",
			text: "Extras de cont\naltceva",
			want: false,
		},
		{
			name: "unrelated document",
			text: "Factura fiscala nr. 1234\nTotal de plata: 100,00",
			want: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := LooksLikeStatementText(tc.text); got != tc.want {
				t.Errorf("LooksLikeStatementText = %v, want %v", got, tc.want)
			}
		})
	}
}
