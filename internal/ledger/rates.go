package ledger

import "github.com/shopspring/decimal"

// Base rates. The UAN/EUR cross rates are composed through USD.
var (
	one        = decimal.NewFromInt(1)
	rateUSDUAN = decimal.RequireFromString("39.5")
	rateUSDEUR = decimal.RequireFromString("0.92")
)

// exchangeRates is the fixed directed-pair table. Pairs are not assumed
// invertible except by construction here.
var exchangeRates = map[[2]string]decimal.Decimal{
	{"USD", "UAN"}: rateUSDUAN,
	{"UAN", "USD"}: one.Div(rateUSDUAN),
	{"USD", "EUR"}: rateUSDEUR,
	{"EUR", "USD"}: one.Div(rateUSDEUR),
	{"UAN", "EUR"}: one.Div(rateUSDUAN).Mul(rateUSDEUR),
	{"EUR", "UAN"}: one.Div(rateUSDEUR).Mul(rateUSDUAN),
}

// Rate returns the directed exchange rate between two currency codes.
// Identical codes convert at 1, even for currencies outside the fixed
// table; any other unknown pair reports false.
func Rate(from, to string) (decimal.Decimal, bool) {
	if from == to {
		return one, true
	}
	rate, ok := exchangeRates[[2]string{from, to}]
	return rate, ok
}
