package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Query builds one table-scoped request. Filters translate to the remote
// query dialect: col=eq.value, or=(a.eq.x,b.eq.y), order=col.desc, limit=n.
type Query struct {
	client *Client
	table  string

	selectCols string
	filters    url.Values
	orderBy    string
	limit      int
	single     bool
}

func (c *Client) From(table string) *Query {
	return &Query{
		client:  c,
		table:   table,
		filters: url.Values{},
	}
}

func (q *Query) Select(cols string) *Query {
	q.selectCols = cols
	return q
}

func (q *Query) Eq(col string, val any) *Query {
	q.filters.Add(col, fmt.Sprintf("eq.%v", val))
	return q
}

func (q *Query) Neq(col string, val any) *Query {
	q.filters.Add(col, fmt.Sprintf("neq.%v", val))
	return q
}

// Or adds a disjunction over the remote dialect, e.g.
// "buyer_id.eq.X,seller_id.eq.X".
func (q *Query) Or(expr string) *Query {
	q.filters.Add("or", "("+expr+")")
	return q
}

func (q *Query) OrderDesc(col string) *Query {
	q.orderBy = col + ".desc"
	return q
}

func (q *Query) OrderAsc(col string) *Query {
	q.orderBy = col + ".asc"
	return q
}

func (q *Query) Limit(n int) *Query {
	q.limit = n
	return q
}

// Single marks the query as a single-row fetch. A response with no row and
// no error resolves to ErrNotFound.
func (q *Query) Single() *Query {
	q.single = true
	return q
}

func (q *Query) url() string {
	params := url.Values{}
	if q.selectCols != "" {
		params.Set("select", q.selectCols)
	}
	for key, vals := range q.filters {
		for _, v := range vals {
			params.Add(key, v)
		}
	}
	if q.orderBy != "" {
		params.Set("order", q.orderBy)
	}
	if q.limit > 0 {
		params.Set("limit", fmt.Sprint(q.limit))
	}

	u := q.client.baseURL + "/rest/v1/" + q.table
	if encoded := params.Encode(); encoded != "" {
		u += "?" + encoded
	}
	return u
}

// Get executes the read and decodes the matched rows into dest.
func (q *Query) Get(ctx context.Context, dest any) error {
	raw, err := q.client.do(ctx, http.MethodGet, q.url(), nil, q.table)
	if err != nil {
		return err
	}
	return q.decode(raw, dest)
}

// Insert writes exactly one row and decodes the server-confirmed copy.
func (q *Query) Insert(ctx context.Context, payload any, dest any) error {
	raw, err := q.client.do(ctx, http.MethodPost, q.url(), payload, q.table)
	if err != nil {
		return err
	}
	if dest == nil {
		return nil
	}
	return q.decodeFirst(raw, dest)
}

// Update patches the filtered rows and decodes the confirmed result.
func (q *Query) Update(ctx context.Context, patch any, dest any) error {
	raw, err := q.client.do(ctx, http.MethodPatch, q.url(), patch, q.table)
	if err != nil {
		return err
	}
	if dest == nil {
		return nil
	}
	return q.decodeFirst(raw, dest)
}

func (q *Query) Delete(ctx context.Context) error {
	_, err := q.client.do(ctx, http.MethodDelete, q.url(), nil, q.table)
	return err
}

func (q *Query) decode(raw []byte, dest any) error {
	if !q.single {
		return json.Unmarshal(raw, dest)
	}
	return q.decodeFirst(raw, dest)
}

// decodeFirst resolves a single row out of the response. "No error, no row"
// is a not-found error here, never a nil success.
func (q *Query) decodeFirst(raw []byte, dest any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" || string(trimmed) == "[]" {
		return ErrNotFound
	}

	if strings.HasPrefix(string(trimmed), "[") {
		var rows []json.RawMessage
		if err := json.Unmarshal(trimmed, &rows); err != nil {
			return err
		}
		if len(rows) == 0 {
			return ErrNotFound
		}
		return json.Unmarshal(rows[0], dest)
	}

	return json.Unmarshal(trimmed, dest)
}
