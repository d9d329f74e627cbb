package api

import (
	"context"
	"net/url"
)

// AddOrUpdateReview submits the user's reflection for a book. The server
// replaces any earlier reflection by the same user and returns the saved
// record.
func (c *Client) AddOrUpdateReview(ctx context.Context, review Review) (Review, error) {
	var saved Review
	err := c.postPrivate(ctx, "/ratings", review, &saved, "submitting your reflection")
	return saved, err
}

// ListReviewsByBook fetches all reflections for a book.
func (c *Client) ListReviewsByBook(ctx context.Context, bookID string) (ReviewList, error) {
	var list ReviewList
	err := c.get(ctx, "/ratings/book/"+url.PathEscape(bookID), nil, &list, "fetching book reflections")
	return list, err
}

// ListReviewsByUser fetches all reflections written by a user.
func (c *Client) ListReviewsByUser(ctx context.Context, userID string) (ReviewList, error) {
	var list ReviewList
	err := c.get(ctx, "/ratings/user/"+url.PathEscape(userID), nil, &list, "fetching your reflections")
	return list, err
}

// AverageRatingByBook fetches the aggregate reflection score for a book.
func (c *Client) AverageRatingByBook(ctx context.Context, bookID string) (AverageRating, error) {
	var avg AverageRating
	err := c.get(ctx, "/ratings/book/"+url.PathEscape(bookID)+"/average", nil, &avg, "fetching average reflections")
	return avg, err
}
