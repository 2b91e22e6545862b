package registry

// Entry pairs a ticker with its display name.
type Entry struct {
	Symbol string
	Name   string
}

// Window is a named lookback period measured in trading days.
type Window struct {
	Label string
	Days  int
}

// Equities lists the broad-market and S&P sector ETFs, in report order.
var Equities = []Entry{
	{"SPY", "S&P 500 ETF"},
	{"QQQ", "Nasdaq 100 ETF"},
	{"IGV", "Software Sector ETF"},
	{"XLK", "Technology"},
	{"XLF", "Financials"},
	{"XLY", "Cons. Discretionary"},
	{"XLC", "Communication Svcs"},
	{"XLI", "Industrials"},
	{"XLB", "Materials"},
	{"XLE", "Energy"},
	{"XLP", "Consumer Staples"},
	{"XLV", "Health Care"},
	{"XLU", "Utilities"},
	{"XLRE", "Real Estate"},
}

// Crypto lists the tracked cryptocurrencies.
var Crypto = []Entry{
	{"BTC-USD", "Bitcoin"},
	{"ETH-USD", "Ethereum"},
}

// Bonds lists the US yield proxies. The 3-month T-bill is fetched with the
// batch but never emitted as a change row.
var Bonds = []Entry{
	{"^IRX", "US 3-Month T-Bill"},
	{"2YY=F", "US 2-Year Yield"},
	{"^TNX", "US 10-Year Yield"},
	{"^TYX", "US 30-Year Yield"},
}

// Metals lists the spot-move futures.
var Metals = []Entry{
	{"GC=F", "Gold"},
	{"SI=F", "Silver"},
}

// MetalProxies lists the exchange-traded metal proxies. Japan 10Y and spot
// metals have no reliable Yahoo tickers; these ETFs stand in for returns.
var MetalProxies = []Entry{
	{"GLD", "SPDR Gold ETF"},
	{"SLV", "iShares Silver ETF"},
}

// Windows lists the lookback windows in report column order.
var Windows = []Window{
	{"1D", 1},
	{"1W", 5},
	{"1M", 21},
	{"3M", 63},
	{"6M", 126},
	{"1Y", 252},
	{"3Y", 756},
}

// Symbols extracts the ticker list from a set of entries, preserving order.
func Symbols(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Symbol
	}
	return out
}
