package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/creativus9/Railway-Repositorio/app"

	"github.com/aws/aws-lambda-go/events"
)

const catalogRetryCooldown = 10 * time.Second

type catalogManager struct {
	mu        sync.RWMutex
	tables    *Tables
	err       error
	lastFetch time.Time
}

// load resolves the active catalog once per process: built-in defaults,
// overlaid with CATALOG_DATA_JSON when set, or with the JSON served at
// CATALOG_DATA_URL. Load failures keep the defaults usable and are retried
// after a cooldown.
func (m *catalogManager) load(ctx context.Context) error {
	m.mu.RLock()
	if m.tables != nil {
		m.mu.RUnlock()
		return nil
	}
	if m.err != nil && time.Since(m.lastFetch) < catalogRetryCooldown {
		m.mu.RUnlock()
		return m.err
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.tables != nil {
		return nil
	}
	if m.err != nil && time.Since(m.lastFetch) < catalogRetryCooldown {
		return m.err
	}

	m.lastFetch = time.Now()

	tables := DefaultTables()

	if inline := os.Getenv("CATALOG_DATA_JSON"); inline != "" {
		if err := json.Unmarshal([]byte(inline), tables); err != nil {
			m.err = fmt.Errorf("error loading catalog data: invalid CATALOG_DATA_JSON:\n>>> %w", err)
			return m.err
		}
		m.tables = tables
		m.err = nil
		return nil
	}

	url := os.Getenv("CATALOG_DATA_URL")
	if url == "" {
		m.tables = tables
		m.err = nil
		return nil
	}

	client := &http.Client{Timeout: 30 * time.Second}
	request, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		m.err = fmt.Errorf("error loading catalog data: error creating request:\n>>> %w", err)
		return m.err
	}
	if key := os.Getenv("CATALOG_ACCESS_KEY"); key != "" {
		request.Header.Set("Catalog-Access-Key", key)
	}
	response, err := client.Do(request)
	if err != nil {
		m.err = fmt.Errorf("error loading catalog data: request error:\n>>> %w", err)
		return m.err
	}
	defer response.Body.Close()

	rBody, err := io.ReadAll(response.Body)
	if err != nil {
		m.err = fmt.Errorf("error loading catalog data: error reading response:\n>>> %w", err)
		return m.err
	}

	if response.StatusCode != http.StatusOK {
		m.err = fmt.Errorf("error loading catalog data: non-200 response: [%s] %s", response.Status, string(rBody))
		return m.err
	}

	decoder := json.NewDecoder(bytes.NewReader(rBody))
	if err := decoder.Decode(tables); err != nil {
		m.err = fmt.Errorf("error loading catalog data: error decoding result:\n>>> %w", err)
		return m.err
	}

	m.tables = tables
	m.err = nil
	return nil
}

// Tables returns the loaded catalog, or nil before a successful load.
func (m *catalogManager) Tables() *Tables {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tables
}

// Reset discards any loaded catalog so the next load re-reads the sources.
func (m *catalogManager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables = nil
	m.err = nil
	m.lastFetch = time.Time{}
}

var Manager = &catalogManager{}

func CatalogMiddleware(function app.NetlifyFunction) app.NetlifyFunction {
	return func(ctx context.Context, request events.APIGatewayProxyRequest) (*events.APIGatewayProxyResponse, error) {
		err := Manager.load(ctx)
		if err != nil {
			return app.NetlifyLogAndJsonResponse(500, "Error loading catalog data", err)
		}

		return function(ctx, request)
	}
}
