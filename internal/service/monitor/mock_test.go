package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/KNICEX/surge-monitor/internal/entity"
	"github.com/KNICEX/surge-monitor/internal/service/exchange"
	"github.com/KNICEX/surge-monitor/internal/service/llm"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockMarketService struct {
	mock.Mock
}

func (m *MockMarketService) GetHistoricalKlines(ctx context.Context, symbol exchange.Symbol, interval exchange.Interval, lookback time.Duration) ([]exchange.Kline, error) {
	args := m.Called(ctx, symbol, interval, lookback)
	return args.Get(0).([]exchange.Kline), args.Error(1)
}

func (m *MockMarketService) GetRecentKlines(ctx context.Context, symbol exchange.Symbol, interval exchange.Interval, count int) ([]exchange.Kline, error) {
	args := m.Called(ctx, symbol, interval, count)
	return args.Get(0).([]exchange.Kline), args.Error(1)
}

type fakeNotifier struct {
	mu    sync.Mutex
	texts []string
	err   error
}

func (n *fakeNotifier) Notify(ctx context.Context, text string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.texts = append(n.texts, text)
	return n.err
}

type fakeSurgeRepo struct {
	surges []entity.Surge
	err    error
}

func (r *fakeSurgeRepo) CreateBatch(ctx context.Context, surges []entity.Surge) error {
	r.surges = append(r.surges, surges...)
	return r.err
}

type fakeLLM struct {
	prompt string
	answer string
	err    error
}

func (f *fakeLLM) AskOnce(ctx context.Context, q llm.Question) (llm.Answer, error) {
	f.prompt = q.Content
	return llm.Answer{Content: f.answer}, f.err
}

func sym(base string) exchange.Symbol {
	return exchange.Symbol{Base: base, Quote: "USDT"}
}

// volumes 构造只关心成交量的K线
func volumes(vs ...float64) []exchange.Kline {
	kls := make([]exchange.Kline, len(vs))
	for i, v := range vs {
		kls[i] = exchange.Kline{
			Close:  decimal.NewFromInt(1),
			Volume: decimal.NewFromFloat(v),
		}
	}
	return kls
}

// pair 构造 (prev, cur) 两根K线
func pair(prevVolume, curVolume, prevClose, curClose float64) []exchange.Kline {
	return []exchange.Kline{
		{Volume: decimal.NewFromFloat(prevVolume), Close: decimal.NewFromFloat(prevClose)},
		{Volume: decimal.NewFromFloat(curVolume), Close: decimal.NewFromFloat(curClose)},
	}
}
