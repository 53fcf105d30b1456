package exchange

import (
	"context"
	"fmt"
	"strings"
)

// Symbol 交易对
type Symbol struct {
	Base  string
	Quote string
}

func (s Symbol) ToString() string {
	return fmt.Sprintf("%s%s", s.Base, s.Quote)
}

// SplitSymbol splits BTCUSDT into BTC and USDT using the given quote asset.
func SplitSymbol(s, quote string) (Symbol, bool) {
	s = strings.ToUpper(s)
	quote = strings.ToUpper(quote)
	if quote == "" || !strings.HasSuffix(s, quote) || s == quote {
		return Symbol{}, false
	}
	return Symbol{Base: strings.TrimSuffix(s, quote), Quote: quote}, true
}

type SymbolService interface {
	// GetAllSymbols 返回所有可交易且以 quote 计价的交易对, 顺序与交易所返回一致
	GetAllSymbols(ctx context.Context, quote string) ([]Symbol, error)
}

type Service interface {
	SymbolService() SymbolService
	MarketService() MarketService
}
