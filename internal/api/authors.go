package api

import (
	"context"
	"net/url"
)

// ListAuthors fetches one page of authors with optional ordering and name
// filter.
func (c *Client) ListAuthors(ctx context.Context, params ListParams) (PagedAuthors, error) {
	var page PagedAuthors
	err := c.get(ctx, "/authors", params.queryValues(), &page, "fetching authors")
	return page, err
}

// GetAuthor fetches a single author by id.
func (c *Client) GetAuthor(ctx context.Context, authorID string) (Author, error) {
	var author Author
	err := c.get(ctx, "/authors/"+url.PathEscape(authorID), nil, &author, "fetching author details")
	return author, err
}

// AddAuthor creates an author (admin, credentialed).
func (c *Client) AddAuthor(ctx context.Context, author Author) (Author, error) {
	var saved Author
	err := c.postPrivate(ctx, "/authors", author, &saved, "adding new author")
	return saved, err
}

// UpdateAuthor replaces an author's fields (admin, credentialed).
func (c *Client) UpdateAuthor(ctx context.Context, authorID string, author Author) (Author, error) {
	var saved Author
	err := c.putPrivate(ctx, "/authors/"+url.PathEscape(authorID), author, &saved, "updating author details")
	return saved, err
}

// DeleteAuthor removes an author (admin, credentialed).
func (c *Client) DeleteAuthor(ctx context.Context, authorID string) error {
	return c.deletePrivate(ctx, "/authors/"+url.PathEscape(authorID), nil, "deleting author")
}
