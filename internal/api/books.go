package api

// Book service: thin typed wrappers over the two request channels. No
// validation happens here; the server owns correctness, this layer owns the
// context label attached to the normalized error.

import (
	"context"
	"net/url"
	"strconv"
)

func (p ListParams) queryValues() url.Values {
	q := url.Values{}
	q.Set("offset", strconv.Itoa(p.Offset))
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.OrderBy != "" {
		q.Set("orderBy", p.OrderBy)
	}
	if p.Title != "" {
		q.Set("title", p.Title)
	}
	if p.Name != "" {
		q.Set("name", p.Name)
	}
	return q
}

// ListBooks fetches one page of books with optional ordering and title filter.
func (c *Client) ListBooks(ctx context.Context, params ListParams) (PagedBooks, error) {
	var page PagedBooks
	err := c.get(ctx, "/books", params.queryValues(), &page, "fetching books")
	return page, err
}

// GetBook fetches a single book by id.
func (c *Client) GetBook(ctx context.Context, bookID string) (Book, error) {
	var book Book
	err := c.get(ctx, "/books/"+url.PathEscape(bookID), nil, &book, "fetching book details")
	return book, err
}

// ListBooksByAuthor fetches one page of an author's books.
func (c *Client) ListBooksByAuthor(ctx context.Context, authorID string, params ListParams) (PagedBooks, error) {
	var page PagedBooks
	err := c.get(ctx, "/books/author/"+url.PathEscape(authorID), params.queryValues(), &page, "fetching author's books")
	return page, err
}

// AddBook creates a book (admin, credentialed).
func (c *Client) AddBook(ctx context.Context, book Book) (Book, error) {
	var saved Book
	err := c.postPrivate(ctx, "/books", book, &saved, "adding new book")
	return saved, err
}

// UpdateBook replaces a book's fields (admin, credentialed).
func (c *Client) UpdateBook(ctx context.Context, bookID string, book Book) (Book, error) {
	var saved Book
	err := c.putPrivate(ctx, "/books/"+url.PathEscape(bookID), book, &saved, "updating book details")
	return saved, err
}

// DeleteBook removes a book (admin, credentialed).
func (c *Client) DeleteBook(ctx context.Context, bookID string) error {
	return c.deletePrivate(ctx, "/books/"+url.PathEscape(bookID), nil, "deleting book")
}
