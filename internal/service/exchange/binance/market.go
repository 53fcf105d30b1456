package binance

import (
	"context"
	"fmt"
	"time"

	"github.com/KNICEX/surge-monitor/internal/service/exchange"
	"github.com/KNICEX/surge-monitor/pkg/decimalx"
	"github.com/adshao/go-binance/v2"
)

// 币安单次请求最多返回 1000 根K线
const maxKlinesPerRequest = 1000

var _ exchange.MarketService = (*MarketService)(nil)

type MarketService struct {
	cli *binance.Client
	now func() time.Time
}

// NewMarketService 创建市场数据服务
func NewMarketService(cli *binance.Client) *MarketService {
	return &MarketService{cli: cli, now: time.Now}
}

func (m *MarketService) GetRecentKlines(ctx context.Context, symbol exchange.Symbol, interval exchange.Interval, count int) ([]exchange.Kline, error) {
	res, err := m.cli.NewKlinesService().
		Symbol(symbol.ToString()).
		Interval(interval.ToString()).
		Limit(count).
		Do(ctx)
	if err != nil {
		return nil, err
	}
	return convertKlines(res)
}

// GetHistoricalKlines 从 now-lookback 开始分页拉取, 直到当前时间
func (m *MarketService) GetHistoricalKlines(ctx context.Context, symbol exchange.Symbol, interval exchange.Interval, lookback time.Duration) ([]exchange.Kline, error) {
	step := interval.Duration()
	if step <= 0 {
		return nil, fmt.Errorf("unsupported interval %q", interval)
	}

	end := m.now()
	start := end.Add(-lookback)
	var kls []exchange.Kline
	for start.Before(end) {
		res, err := m.cli.NewKlinesService().
			Symbol(symbol.ToString()).
			Interval(interval.ToString()).
			StartTime(start.UnixMilli()).
			EndTime(end.UnixMilli()).
			Limit(maxKlinesPerRequest).
			Do(ctx)
		if err != nil {
			return nil, err
		}
		page, err := convertKlines(res)
		if err != nil {
			return nil, err
		}
		kls = append(kls, page...)
		if len(page) < maxKlinesPerRequest {
			break
		}
		start = page[len(page)-1].OpenTime.Add(step)
	}
	return kls, nil
}

func convertKlines(klines []*binance.Kline) ([]exchange.Kline, error) {
	kls := make([]exchange.Kline, len(klines))
	for i, k := range klines {
		ds, err := decimalx.FromStrings(k.Open, k.Close, k.High, k.Low, k.Volume, k.QuoteAssetVolume)
		if err != nil {
			return nil, fmt.Errorf("kline at %d: %w", k.OpenTime, err)
		}
		kls[i] = exchange.Kline{
			OpenTime:         time.UnixMilli(k.OpenTime),
			CloseTime:        time.UnixMilli(k.CloseTime),
			Open:             ds[0],
			Close:            ds[1],
			High:             ds[2],
			Low:              ds[3],
			Volume:           ds[4],
			QuoteAssetVolume: ds[5],
			TradeNum:         k.TradeNum,
		}
	}
	return kls, nil
}
