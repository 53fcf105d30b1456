package binance

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adshao/go-binance/v2"
)

// newTestClient 返回指向本地测试服务器的币安客户端
func newTestClient(t *testing.T, handler http.HandlerFunc) *binance.Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cli := binance.NewClient("test-key", "test-secret")
	cli.BaseURL = srv.URL
	cli.HTTPClient = srv.Client()
	return cli
}

// klineRow 构造币安K线接口的单行数据
func klineRow(openTime int64, open, high, low, close, volume string) []any {
	return []any{
		openTime, open, high, low, close, volume,
		openTime + 3_599_999, "1000.0", 42, "1.0", "1.0", "0",
	}
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encode response: %v", err)
	}
}
