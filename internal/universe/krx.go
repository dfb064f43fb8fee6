package universe

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

const krxCorpListURL = "https://kind.krx.co.kr/corpgeneral/corpList.do?method=download"

// KRX downloads the listed-company table from the KRX disclosure site. The
// download is an EUC-KR encoded HTML table; codes are padded to six digits
// and suffixed with the KOSPI exchange marker.
type KRX struct {
	URL    string
	Client *http.Client
}

// NewKRX creates a KRX universe provider with optional proxy support.
func NewKRX(proxyURL string) *KRX {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &KRX{
		URL: krxCorpListURL,
		Client: &http.Client{
			Timeout:   60 * time.Second,
			Transport: transport,
		},
	}
}

func (k *KRX) Name() string { return "krx" }

func (k *KRX) Instruments() (map[string]string, error) {
	req, err := http.NewRequest("GET", k.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := k.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("krx fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("krx: status %d", resp.StatusCode)
	}

	decoded, err := io.ReadAll(transform.NewReader(resp.Body, korean.EUCKR.NewDecoder()))
	if err != nil {
		return nil, fmt.Errorf("krx decode euc-kr: %w", err)
	}

	symbols, err := ParseCorpList(string(decoded))
	if err != nil {
		return nil, err
	}
	return symbols, nil
}

var tdPattern = regexp.MustCompile(`<td[^>]*>([^<]*)</td>`)

// ParseCorpList extracts name/code pairs from the KRX corp-list HTML table.
// A cell of exactly six digits is a stock code; the preceding cell is the
// company name.
func ParseCorpList(html string) (map[string]string, error) {
	cells := tdPattern.FindAllStringSubmatch(html, -1)
	symbols := make(map[string]string)
	prev := ""
	for _, m := range cells {
		cell := strings.TrimSpace(m[1])
		if isStockCode(cell) && prev != "" {
			symbols[prev] = cell + ".KS"
		}
		prev = cell
	}
	if len(symbols) == 0 {
		return nil, errors.New("krx: no instruments parsed")
	}
	return symbols, nil
}

func isStockCode(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
