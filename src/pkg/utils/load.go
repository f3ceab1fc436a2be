package utils

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/hr3lxphr6j/requests"

	"github.com/onevent-go/onevent/src/consts"
	"github.com/onevent-go/onevent/src/dom"
)

var headers = map[string]interface{}{
	"User-Agent": consts.AppName + "/" + consts.Version,
	"Accept":     "text/html,application/xhtml+xml",
}

func IsURL(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}

// LoadDocument parses the HTML document at input, a file path or an http(s) URL.
func LoadDocument(input string) (*dom.Document, error) {
	if IsURL(input) {
		return FetchDocument(input)
	}
	b, err := os.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("can`t open file %s: %w", input, err)
	}
	return dom.Parse(bytes.NewReader(b))
}

func FetchDocument(url string) (*dom.Document, error) {
	resp, err := requests.Get(url, requests.Headers(headers))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get page %s, code: %d", url, resp.StatusCode)
	}
	body, err := resp.Bytes()
	if err != nil {
		return nil, err
	}
	return dom.Parse(bytes.NewReader(body))
}
