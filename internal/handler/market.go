package handler

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// GetMarketPrice 轉發外部行情網站的最新物價快照，原樣回傳上游的 JSON。
func (h *Handler) GetMarketPrice(w http.ResponseWriter, r *http.Request) {
	client := &http.Client{
		Timeout: time.Duration(h.config.MarketPrice.RequestTimeout) * time.Second,
	}

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, h.config.MarketPrice.UpstreamURL, nil)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		h.internalServerError(w, r, fmt.Errorf("上游行情 API 回應異常: %s", resp.Status))
		return
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
