package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Query builds and executes one PostgREST request. Only the operators this
// service needs are implemented.
type Query struct {
	client  *Client
	table   string
	method  string
	columns string
	filters []string
	limit   *int
	body    []byte
	headers map[string]string
	err     error
}

// Select sets the projected columns. PostgREST embedded-resource syntax
// (e.g. "friend_profile:profiles!fk_friend(username)") is passed through.
func (q *Query) Select(columns string) *Query {
	q.method = http.MethodGet
	q.columns = columns
	return q
}

// Insert appends rows. The stored representation is returned unless Minimal
// is also set.
func (q *Query) Insert(data any) *Query {
	q.method = http.MethodPost
	q.setBody(data)
	q.headers["Prefer"] = "return=representation"
	return q
}

// Upsert writes rows with insert-or-update semantics on the given conflict
// target. Existing rows are merged, so replaying the same write is a no-op.
func (q *Query) Upsert(data any, onConflict string) *Query {
	q.method = http.MethodPost
	q.setBody(data)
	q.headers["Prefer"] = "return=representation,resolution=merge-duplicates"
	if onConflict != "" {
		q.filters = append(q.filters, "on_conflict="+url.QueryEscape(onConflict))
	}
	return q
}

// Minimal asks the store not to echo written rows back.
func (q *Query) Minimal() *Query {
	q.headers["Prefer"] = strings.Replace(q.headers["Prefer"], "return=representation", "return=minimal", 1)
	return q
}

// Eq filters on column equality.
func (q *Query) Eq(column string, value any) *Query {
	q.filters = append(q.filters, fmt.Sprintf("%s=eq.%v", column, value))
	return q
}

// ILike filters with a case-insensitive pattern; "*" is the wildcard.
func (q *Query) ILike(column, pattern string) *Query {
	q.filters = append(q.filters, fmt.Sprintf("%s=ilike.%s", column, url.QueryEscape(pattern)))
	return q
}

// Limit caps the number of returned rows.
func (q *Query) Limit(n int) *Query {
	q.limit = &n
	return q
}

// Execute runs the query and returns the raw response body. Platform errors
// come back as *Error.
func (q *Query) Execute(ctx context.Context) ([]byte, error) {
	if q.err != nil {
		return nil, q.err
	}

	respBody, status, err := q.client.restRequest(ctx, q.method, q.buildURL(), q.body, q.headers)
	if err != nil {
		return nil, err
	}
	if status >= 400 {
		return nil, parseError(respBody, status)
	}
	return respBody, nil
}

// ExecuteInto runs the query and unmarshals the response into dest.
func (q *Query) ExecuteInto(ctx context.Context, dest any) error {
	data, err := q.Execute(ctx)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("supabase: unmarshal response: %w", err)
	}
	return nil
}

func (q *Query) setBody(data any) {
	body, err := json.Marshal(data)
	if err != nil {
		q.err = fmt.Errorf("supabase: marshal body: %w", err)
		return
	}
	q.body = body
}

func (q *Query) buildURL() string {
	u := q.client.restURL + "/" + url.PathEscape(q.table)

	params := make([]string, 0, len(q.filters)+2)
	if q.method == http.MethodGet && q.columns != "" {
		params = append(params, "select="+url.QueryEscape(q.columns))
	}
	params = append(params, q.filters...)
	if q.limit != nil {
		params = append(params, fmt.Sprintf("limit=%d", *q.limit))
	}

	if len(params) > 0 {
		u += "?" + strings.Join(params, "&")
	}
	return u
}
