package broker

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"TradeSentinel/internal/model"
)

// KISConfig holds the credentials and account identifiers for the Korea
// Investment & Securities open API.
type KISConfig struct {
	BaseURL     string
	AppKey      string
	AppSecret   string
	AccountNo   string // CANO
	ProductCode string // ACNT_PRDT_CD
}

// KISClient talks to the KIS brokerage REST API.
type KISClient struct {
	cfg    KISConfig
	token  string
	Client *http.Client
}

// NewKISClient creates a client with optional proxy support. The bearer token
// is acquired separately via Authenticate.
func NewKISClient(cfg KISConfig, proxyURL string) *KISClient {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &KISClient{
		cfg: cfg,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

// Authenticate exchanges the app key/secret for a bearer token. A failure
// leaves the token empty; subsequent live orders then fail as execution
// failures rather than aborting the pass.
func (c *KISClient) Authenticate() error {
	body, err := json.Marshal(map[string]string{
		"grant_type": "client_credentials",
		"appkey":     c.cfg.AppKey,
		"appsecret":  c.cfg.AppSecret,
	})
	if err != nil {
		return fmt.Errorf("marshal token request: %w", err)
	}

	resp, err := c.Client.Post(c.cfg.BaseURL+"/oauth2/tokenP", "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("token request: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	var result struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode token response: %w", err)
	}
	if result.AccessToken == "" {
		return fmt.Errorf("token response contained no access_token")
	}
	c.token = result.AccessToken
	return nil
}

// HasToken reports whether a bearer token is available.
func (c *KISClient) HasToken() bool { return c.token != "" }

// trID returns the transaction-type code distinguishing cash buy from sell.
func trID(side model.Side) string {
	if side == model.SideBuy {
		return "TTTC0802U"
	}
	return "TTTC0801U"
}

// instrumentCode strips the exchange suffix, leaving the 6-digit KIS code.
func instrumentCode(symbol string) string {
	if i := strings.IndexByte(symbol, '.'); i > 0 {
		return symbol[:i]
	}
	return symbol
}

// PlaceOrder submits a cash order and normalizes the acknowledgement. All
// failures, including a missing token, come back as a failed ExecutionResult.
func (c *KISClient) PlaceOrder(order model.Order) model.ExecutionResult {
	if c.token == "" {
		return model.ExecutionResult{Success: false, Message: "no access token, order not sent"}
	}

	payload := map[string]string{
		"CANO":         c.cfg.AccountNo,
		"ACNT_PRDT_CD": c.cfg.ProductCode,
		"PDNO":         instrumentCode(order.Symbol),
		"ORD_DVSN":     "00",
		"ORD_QTY":      strconv.Itoa(order.Qty),
		"ORD_UNPR":     strconv.FormatFloat(order.Price, 'f', -1, 64),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return model.ExecutionResult{Success: false, Message: fmt.Sprintf("marshal order: %v", err)}
	}

	req, err := http.NewRequest("POST", c.cfg.BaseURL+"/uapi/domestic-stock/v1/trading/order-cash", bytes.NewReader(body))
	if err != nil {
		return model.ExecutionResult{Success: false, Message: fmt.Sprintf("build order request: %v", err)}
	}
	req.Header.Set("content-type", "application/json")
	req.Header.Set("authorization", "Bearer "+c.token)
	req.Header.Set("appkey", c.cfg.AppKey)
	req.Header.Set("appsecret", c.cfg.AppSecret)
	req.Header.Set("tr_id", trID(order.Side))

	resp, err := c.Client.Do(req)
	if err != nil {
		return model.ExecutionResult{Success: false, Message: fmt.Sprintf("order request: %v", err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.ExecutionResult{Success: false, Message: fmt.Sprintf("read order response: %v", err)}
	}

	var result struct {
		Message string `json:"rt_msg"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return model.ExecutionResult{Success: false, Message: fmt.Sprintf("decode order response: %v", err)}
	}
	if result.Message == "" {
		result.Message = "no response message"
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("[WARN] kis order rejected: status %d, %s", resp.StatusCode, result.Message)
		return model.ExecutionResult{Success: false, Message: result.Message}
	}
	return model.ExecutionResult{Success: true, Message: result.Message}
}
