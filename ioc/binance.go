package ioc

import (
	"github.com/adshao/go-binance/v2"
)

func InitBinanceCli(cfg BinanceConfig) *binance.Client {
	return binance.NewClient(cfg.ApiKey, cfg.ApiSecret)
}
