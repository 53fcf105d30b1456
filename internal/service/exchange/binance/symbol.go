package binance

import (
	"context"
	"strings"

	"github.com/KNICEX/surge-monitor/internal/service/exchange"
	"github.com/adshao/go-binance/v2"
	"github.com/samber/lo"
)

const symbolStatusTrading = "TRADING"

var _ exchange.SymbolService = (*SymbolService)(nil)

type SymbolService struct {
	cli        *binance.Client
	ignoreBase map[string]struct{}
}

type SymbolOption func(svc *SymbolService)

// WithIgnoreBase 忽略的币种, 例如稳定币
func WithIgnoreBase(bases ...string) SymbolOption {
	return func(svc *SymbolService) {
		for _, b := range bases {
			svc.ignoreBase[strings.ToUpper(b)] = struct{}{}
		}
	}
}

func NewSymbolService(cli *binance.Client, opts ...SymbolOption) *SymbolService {
	svc := &SymbolService{
		cli:        cli,
		ignoreBase: map[string]struct{}{},
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (svc *SymbolService) GetAllSymbols(ctx context.Context, quote string) ([]exchange.Symbol, error) {
	info, err := svc.cli.NewExchangeInfoService().Do(ctx)
	if err != nil {
		return nil, err
	}

	quote = strings.ToUpper(quote)
	tradable := lo.Filter(info.Symbols, func(item binance.Symbol, index int) bool {
		return item.Status == symbolStatusTrading && strings.HasSuffix(item.Symbol, quote)
	})

	res := lo.FilterMap(tradable, func(item binance.Symbol, index int) (exchange.Symbol, bool) {
		return exchange.SplitSymbol(item.Symbol, quote)
	})
	return svc.filterIgnored(res), nil
}

func (svc *SymbolService) filterIgnored(s []exchange.Symbol) []exchange.Symbol {
	return lo.Reject(s, func(item exchange.Symbol, index int) bool {
		_, ok := svc.ignoreBase[item.Base]
		return ok
	})
}
