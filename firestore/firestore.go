// Package firestore is a minimal client for the Firestore REST v1 API,
// covering the two operations the order pipeline needs: merge-upserting a
// document and deleting one. Writes fail fast; retry policy belongs to the
// caller's upstream (n8n re-delivers failed batches).
package firestore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/creativus9/Railway-Repositorio/app"
	"github.com/creativus9/Railway-Repositorio/helpers"
)

type Client struct {
	project  string
	database string
	token    string
	http     *http.Client
}

// NewClient builds a client from FIRESTORE_PROJECT_ID, FIRESTORE_DATABASE and
// FIRESTORE_ACCESS_TOKEN. An error here means the persistence collaborator is
// unavailable and the whole request must be refused (HTTP 503 upstream).
func NewClient() (*Client, error) {
	project := os.Getenv("FIRESTORE_PROJECT_ID")
	database := os.Getenv("FIRESTORE_DATABASE")
	token := os.Getenv("FIRESTORE_ACCESS_TOKEN")
	if !(project != "" && database != "" && token != "") {
		return nil, fmt.Errorf("invalid or incomplete Firestore environment variables")
	}
	return &Client{
		project:  project,
		database: database,
		token:    token,
		http:     &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (c *Client) documentUrl(collection, id string) string {
	return fmt.Sprintf(
		"https://firestore.googleapis.com/v1/projects/%s/databases/%s/documents/%s/%s",
		c.project, c.database, collection, url.PathEscape(id),
	)
}

// encodeValue maps a plain Go value onto the typed value object the REST API
// expects. Unhandled kinds degrade to their string form rather than failing a
// write.
func encodeValue(val any) map[string]any {
	switch v := val.(type) {
	case nil:
		return map[string]any{"nullValue": nil}
	case string:
		return map[string]any{"stringValue": v}
	case bool:
		return map[string]any{"booleanValue": v}
	case int:
		return map[string]any{"integerValue": strconv.Itoa(v)}
	case int64:
		return map[string]any{"integerValue": strconv.FormatInt(v, 10)}
	case float64:
		return map[string]any{"doubleValue": v}
	default:
		return map[string]any{"stringValue": fmt.Sprintf("%v", v)}
	}
}

func encodeFields(fields map[string]any) (body map[string]any, fieldPaths []string) {
	encoded := make(map[string]any, len(fields))
	fieldPaths = make([]string, 0, len(fields))
	for name, val := range fields {
		encoded[name] = encodeValue(val)
		fieldPaths = append(fieldPaths, name)
	}
	sort.Strings(fieldPaths)
	return map[string]any{"fields": encoded}, fieldPaths
}

// call issues one REST request and normalizes error reporting. Tests inject a
// fake transport through the per-request cache under {"Firestore", "Do"}.
func (c *Client) call(ctx context.Context, method, callUrl string, body any) error {
	var reader io.Reader
	if body != nil {
		bodyJson, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("could not serialize json for Firestore call:\n>>> %w", err)
		}
		reader = bytes.NewBuffer(bodyJson)
	}

	request, err := http.NewRequestWithContext(ctx, method, callUrl, reader)
	if err != nil {
		return fmt.Errorf("error creating Firestore request:\n>>> %w", err)
	}
	request.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	do, found := app.GetCacheValue[func(*http.Request) (*http.Response, error)](ctx, []any{"Firestore", "Do"}, nil)
	if !found {
		do = c.http.Do
	}
	response, err := do(request)
	if err != nil {
		return fmt.Errorf("request error during Firestore call:\n>>> %w", err)
	}
	defer response.Body.Close()

	rBody, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("error reading response from Firestore call:\n>>> %w", err)
	}

	if response.StatusCode != http.StatusOK {
		var rJson any
		errMsg := string(rBody)
		if json.Unmarshal(rBody, &rJson) == nil {
			errMsg = helpers.Traverse(rJson, []any{"error", "message"}, errMsg)
		}
		return fmt.Errorf("non-200 response from Firestore call: [%s] %s", response.Status, errMsg)
	}

	return nil
}

// PutMerge upserts the document collection/id, merging only the given fields
// into whatever already exists (fields absent from the call are never
// touched).
func (c *Client) PutMerge(ctx context.Context, collection, id string, fields map[string]any) error {
	body, fieldPaths := encodeFields(fields)

	query := url.Values{}
	for _, fieldPath := range fieldPaths {
		query.Add("updateMask.fieldPaths", fieldPath)
	}

	err := c.call(ctx, "PATCH", c.documentUrl(collection, id)+"?"+query.Encode(), body)
	if err != nil {
		return fmt.Errorf("error merging document %s/%s into Firestore\nERROR=%w", collection, id, err)
	}
	return nil
}

// DeleteDocument removes collection/id. Deleting a document that does not
// exist succeeds.
func (c *Client) DeleteDocument(ctx context.Context, collection, id string) error {
	err := c.call(ctx, "DELETE", c.documentUrl(collection, id), nil)
	if err != nil {
		return fmt.Errorf("error deleting document %s/%s from Firestore\nERROR=%w", collection, id, err)
	}
	return nil
}
