package binance

import (
	"github.com/KNICEX/surge-monitor/internal/service/exchange"
	"github.com/adshao/go-binance/v2"
)

var _ exchange.Service = (*Service)(nil)

type Service struct {
	symbolSvc exchange.SymbolService
	marketSvc exchange.MarketService
}

func NewService(cli *binance.Client, opts ...SymbolOption) *Service {
	return &Service{
		symbolSvc: NewSymbolService(cli, opts...),
		marketSvc: NewMarketService(cli),
	}
}

func (s *Service) SymbolService() exchange.SymbolService {
	return s.symbolSvc
}

func (s *Service) MarketService() exchange.MarketService {
	return s.marketSvc
}
