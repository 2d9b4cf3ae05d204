package categorize

import "regexp"

// defaultRule maps a case-insensitive pattern over "title merchant" to a
// category. Rules are tried in order; first match wins.
type defaultRule struct {
	pattern  *regexp.Regexp
	category string
}

func rule(pattern, category string) defaultRule {
	return defaultRule{regexp.MustCompile(`(?i)` + pattern), category}
}

// Static seed data for the Romanian statement vocabulary. Per-user
// behavior comes from override maps and the savings-account list, never
// from editing this table.
var defaultRules = []defaultRule{
	// Utilities & bills
	rule(`\b(engie)\b`, "Utilities"),
	rule(`\b(digi|digi romania)\b`, "Internet/Phone"),
	rule(`\b(orange)\b`, "Internet/Phone"),
	rule(`\b(hidroelectrica)\b`, "Utilities"),
	rule(`\b(ghiseul\.ro)\b`, "Taxes/Fees"),

	// Groceries
	rule(`\b(lidl)\b`, "Groceries"),
	rule(`\b(profi)\b`, "Groceries"),
	rule(`\b(carrefour)\b`, "Groceries"),
	rule(`\b(auchan)\b`, "Groceries"),

	// Transport & fuel
	rule(`\b(mol|rompetrol)\b`, "Transport/Fuel"),
	rule(`\b(rat\s+craiova)\b`, "Transport"),

	// Shopping / ecom
	rule(`\b(emag|payu\*emag|twisto_emag)\b`, "Shopping"),
	rule(`\b(temu|aliexpress|trendyol|answear)\b`, "Shopping"),
	rule(`\b(dedeman|leroy merlin|jumbo)\b`, "Home/DIY"),

	// Restaurants
	rule(`\b(kfc|mcd|burger king)\b`, "Restaurants"),

	// Subscriptions / digital
	rule(`\b(netflix)\b`, "Subscriptions"),
	rule(`\b(spotify)\b`, "Subscriptions"),
	rule(`\b(sk(y)?showtime)\b`, "Subscriptions"),
	rule(`\b(amazon prime)\b`, "Subscriptions"),
	rule(`\b(google \*youtubepremium|youtubepremium)\b`, "Subscriptions"),
	rule(`\b(steam|steamgames\.com|steam purchase)\b`, "Entertainment"),
	rule(`\b(apple\.com/bill)\b`, "Subscriptions"),
	rule(`\b(openai \*chatgpt)\b`, "Subscriptions"),

	// Transfers / internal movements
	rule(`\b(transfer home'bank|transfer)\b`, "Transfers"),
	rule(`\b(alimentare card credit)\b`, "Transfers"),
	rule(`\b(plata debit direct)\b`, "Bills"),

	// Banking internal
	rule(`\b(tranzactie round up)\b`, "Savings"),
	rule(`\b(rata credit)\b`, "Loans"),
	rule(`\b(suma transferata din linia de credit)\b`, "Loans"),
	rule(`\b(taxe si comisioane)\b`, "Fees"),
}
