package graphql

import "context"

// PageInfo is the relay-style pagination block returned by every connection.
type PageInfo struct {
	HasNextPage bool    `json:"hasNextPage"`
	EndCursor   *string `json:"endCursor"`
}

// Edge wraps a single connection node.
type Edge[T any] struct {
	Node T `json:"node"`
}

// Connection is a relay-style connection of T.
type Connection[T any] struct {
	Edges    []Edge[T] `json:"edges"`
	PageInfo PageInfo  `json:"pageInfo"`
}

// Nodes unwraps the connection edges in order.
func (c Connection[T]) Nodes() []T {
	nodes := make([]T, 0, len(c.Edges))
	for _, e := range c.Edges {
		nodes = append(nodes, e.Node)
	}
	return nodes
}

// PageFunc fetches one page at the given cursor. A nil cursor requests the
// first page.
type PageFunc[T any] func(ctx context.Context, cursor *string) (Connection[T], error)

// ForEachPage walks the connection sequentially, invoking visit with each
// page's nodes. Traversal stops at the first fetch or visit error, or when
// hasNextPage is false.
func ForEachPage[T any](ctx context.Context, fetch PageFunc[T], visit func(nodes []T) error) error {
	var cursor *string
	for {
		page, err := fetch(ctx, cursor)
		if err != nil {
			return err
		}
		if err := visit(page.Nodes()); err != nil {
			return err
		}
		if !page.PageInfo.HasNextPage {
			return nil
		}
		cursor = page.PageInfo.EndCursor
	}
}

// CollectPages walks the connection sequentially and accumulates every node.
func CollectPages[T any](ctx context.Context, fetch PageFunc[T]) ([]T, error) {
	var all []T
	err := ForEachPage(ctx, fetch, func(nodes []T) error {
		all = append(all, nodes...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return all, nil
}
