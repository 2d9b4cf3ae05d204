package categorize

import (
	"testing"

	"github.com/radum/extrascont/extractor/common"
	"github.com/shopspring/decimal"
)

func amountPtr(s string) *decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return &d
}

func TestApply_TransactionOverrideBeatsPairOverride(t *testing.T) {
	tx := common.Transaction{
		Date:      "2026-01-05",
		Title:     "POS",
		Merchant:  "Lidl",
		Direction: common.DirectionDebit,
		Amount:    amountPtr("-42.50"),
	}
	overrides := map[string]string{
		"Lidl||POS":                     "Shopping",
		"Lidl||POS||2026-01-05||-42.50": "Groceries",
	}

	out := Apply([]common.Transaction{tx}, overrides, nil)
	if out[0].Category != "Groceries" {
		t.Errorf("category = %q, want Groceries", out[0].Category)
	}
}

func TestApply_PairOverride(t *testing.T) {
	tx := common.Transaction{
		Date:     "2026-01-06",
		Title:    "POS",
		Merchant: "Lidl",
		Amount:   amountPtr("-10.00"),
	}

	out := Apply([]common.Transaction{tx}, map[string]string{"Lidl||POS": "Shopping"}, nil)
	if out[0].Category != "Shopping" {
		t.Errorf("category = %q, want Shopping", out[0].Category)
	}
}

func TestApply_SavingsFlowIn(t *testing.T) {
	tx := common.Transaction{
		Title:     "Transfer Home'Bank",
		Merchant:  "Maria Popescu",
		Method:    common.MethodTransferOut,
		Direction: common.DirectionDebit,
		RawLines: []string{
			"08 ianuarie 2026 Transfer Home'Bank",
			"Beneficiar: Maria Popescu",
			"In contul: RO41INGB0000999902619755",
		},
	}

	out := Apply([]common.Transaction{tx}, nil, []string{"RO41 INGB 0000 9999 0261 9755"})
	if out[0].Category != "Savings" {
		t.Errorf("category = %q, want Savings", out[0].Category)
	}
}

func TestApply_SavingsFlowOut(t *testing.T) {
	tx := common.Transaction{
		Title:     "Transfer Home'Bank",
		Merchant:  "Ion Popescu",
		Method:    common.MethodTransferIn,
		Direction: common.DirectionCredit,
		RawLines: []string{
			"10 ianuarie 2026 Transfer Home'Bank",
			"Ordonator: Ion Popescu",
			"Din contul: RO41INGB0000999902619755",
		},
	}

	out := Apply([]common.Transaction{tx}, nil, []string{"RO41INGB0000999902619755"})
	if out[0].Category != "Loans" {
		t.Errorf("category = %q, want Loans", out[0].Category)
	}
}

func TestApply_SavingsDirectionFallback(t *testing.T) {
	base := common.Transaction{
		Title:    "Transfer",
		Merchant: "RO41INGB0000999902619755",
		RawLines: []string{"RO41INGB0000999902619755"},
	}
	accounts := []string{"RO41INGB0000999902619755"}

	credit := base
	credit.Direction = common.DirectionCredit
	out := Apply([]common.Transaction{credit}, nil, accounts)
	if out[0].Category != "Savings" {
		t.Errorf("credit category = %q, want Savings", out[0].Category)
	}

	debit := base
	debit.Direction = common.DirectionDebit
	out = Apply([]common.Transaction{debit}, nil, accounts)
	if out[0].Category != "Loans" {
		t.Errorf("debit category = %q, want Loans", out[0].Category)
	}
}

func TestApply_DefaultRules(t *testing.T) {
	cases := []struct {
		merchant string
		title    string
		want     string
	}{
		{merchant: "LIDL BUCURESTI", title: "Cumparare card", want: "Groceries"},
		{merchant: "MOL PITESTI", title: "Cumparare card", want: "Transport/Fuel"},
		{merchant: "ENGIE ROMANIA", title: "Plata factura", want: "Utilities"},
		{merchant: "Maria Popescu", title: "Transfer Home'Bank", want: "Transfers"},
		{merchant: "", title: "Tranzactie Round Up", want: "Savings"},
		{merchant: "", title: "Taxe si comisioane", want: "Fees"},
		{merchant: "XYZZY SRL", title: "Operatiune necunoscuta", want: "Other"},
	}

	for _, tc := range cases {
		out := Apply([]common.Transaction{{Title: tc.title, Merchant: tc.merchant}}, nil, nil)
		if out[0].Category != tc.want {
			t.Errorf("%q/%q category = %q, want %q", tc.merchant, tc.title, out[0].Category, tc.want)
		}
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	txs := []common.Transaction{{Title: "Cumparare card", Merchant: "LIDL"}}

	out := Apply(txs, nil, nil)
	if txs[0].Category != "" {
		t.Errorf("input mutated, category = %q", txs[0].Category)
	}
	if out[0].Category != "Groceries" {
		t.Errorf("output category = %q, want Groceries", out[0].Category)
	}
}

func TestApply_Idempotent(t *testing.T) {
	txs := []common.Transaction{
		{Title: "Cumparare card", Merchant: "LIDL"},
		{Title: "Operatiune necunoscuta", Merchant: ""},
	}

	once := Apply(txs, nil, nil)
	twice := Apply(once, nil, nil)
	for i := range once {
		if once[i].Category != twice[i].Category {
			t.Errorf("tx %d category changed on reapply: %q vs %q", i, once[i].Category, twice[i].Category)
		}
	}
}

func TestApply_BlankSavingsAccountsIgnored(t *testing.T) {
	tx := common.Transaction{
		Title:     "Transfer",
		Direction: common.DirectionCredit,
		RawLines:  []string{"fara iban"},
	}

	out := Apply([]common.Transaction{tx}, nil, []string{"", "  "})
	if out[0].Category != "Transfers" {
		t.Errorf("category = %q, want Transfers", out[0].Category)
	}
}

func TestTransactionKey_NilAmount(t *testing.T) {
	key := TransactionKey(common.Transaction{Merchant: "Lidl", Title: "POS", Date: "2026-01-05"})
	if key != "Lidl||POS||2026-01-05||" {
		t.Errorf("key = %q", key)
	}
}

func TestMentionsAccount_NormalizesIBAN(t *testing.T) {
	tx := common.Transaction{RawLines: []string{"In contul: ro41 ingb 0000 9999 0261 9755"}}
	if !MentionsAccount(tx, "RO41INGB0000999902619755") {
		t.Error("spaced lowercase IBAN should match")
	}
	if MentionsAccount(tx, "RO41INGB0000999999999999") {
		t.Error("different IBAN should not match")
	}
}

func TestAccountFlow_ReversedPartyMethod(t *testing.T) {
	tx := common.Transaction{
		Merchant: "RO41INGB0000999902619755",
		Method:   common.MethodTransferOut,
		RawLines: []string{"Beneficiar: RO41INGB0000999902619755"},
	}
	// "beneficiar" is an in-marker on the mention line, and the party
	// itself is the tracked account; both agree on money flowing in.
	if got := AccountFlow(tx, "RO41INGB0000999902619755"); got != flowIn {
		t.Errorf("flow = %q, want %q", got, flowIn)
	}
}

func TestAccountFlow_MarkerScoring(t *testing.T) {
	tx := common.Transaction{
		RawLines: []string{
			"Cont beneficiar:",
			"RO41INGB0000999902619755",
		},
	}
	if got := AccountFlow(tx, "RO41INGB0000999902619755"); got != flowIn {
		t.Errorf("flow = %q, want %q", got, flowIn)
	}
}

func TestAccountFlow_Ambiguous(t *testing.T) {
	tx := common.Transaction{RawLines: []string{"RO41INGB0000999902619755"}}
	if got := AccountFlow(tx, "RO41INGB0000999902619755"); got != "" {
		t.Errorf("flow = %q, want empty", got)
	}
}
