package health

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

var listenerClient = &http.Client{Timeout: 2 * time.Second}

// ListenURL turns a listen address such as ":8080" into a URL that can be dialled.
func ListenURL(listenAddress string) string {
	if strings.HasPrefix(listenAddress, ":") {
		listenAddress = "localhost" + listenAddress
	}

	return "http://" + listenAddress
}

// CheckHTTPListener calls path on the server bound to listenAddress, given as in
// graphsearch_httpListenAddress. Any 2xx answer counts as healthy.
func CheckHTTPListener(listenAddress, path string) CheckFunc {
	url := ListenURL(listenAddress) + "/" + strings.TrimPrefix(path, "/")

	return func(ctx context.Context, _ bool) (int, string, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return http.StatusServiceUnavailable, fmt.Sprintf("cannot build request for %s", url), err
		}

		resp, err := listenerClient.Do(req)
		if err != nil {
			return http.StatusServiceUnavailable, fmt.Sprintf("%s is not accepting connections", listenAddress), err
		}

		_ = resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return http.StatusServiceUnavailable, fmt.Sprintf("%s returned status %d", url, resp.StatusCode), nil
		}

		return http.StatusOK, fmt.Sprintf("%s is accepting requests", listenAddress), nil
	}
}
