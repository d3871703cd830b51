package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// Content types served under /wp-json/wp/v2.
const (
	TypePost = "posts"
	TypePage = "pages"
)

// ListPostsOptions contains options for listing posts.
type ListPostsOptions struct {
	Search  string
	Status  string // publish, draft, any
	PerPage int
	Page    int
}

// GetContent returns a post or page, by content type, with its raw content.
func (c *Client) GetContent(ctx context.Context, contentType string, id int) (*Post, error) {
	if contentType != TypePost && contentType != TypePage {
		return nil, fmt.Errorf("unsupported content type %q: must be %s or %s", contentType, TypePost, TypePage)
	}
	if id <= 0 {
		return nil, fmt.Errorf("invalid %s id: %d", contentType, id)
	}

	path := fmt.Sprintf("/wp-json/wp/v2/%s/%d?context=edit", contentType, id)
	body, err := c.Get(ctx, path)
	if err != nil {
		return nil, err
	}

	var post Post
	if err := json.Unmarshal(body, &post); err != nil {
		return nil, fmt.Errorf("failed to parse %s response: %w", contentType, err)
	}

	return &post, nil
}

// ListPosts returns posts of contentType matching opts.
func (c *Client) ListPosts(ctx context.Context, contentType string, opts *ListPostsOptions) ([]Post, error) {
	params := url.Values{}
	params.Set("context", "edit")
	params.Set("per_page", "10") // Default limit

	if opts != nil {
		if opts.Search != "" {
			params.Set("search", opts.Search)
		}
		if opts.Status != "" {
			params.Set("status", opts.Status)
		}
		if opts.PerPage > 0 {
			params.Set("per_page", strconv.Itoa(opts.PerPage))
		}
		if opts.Page > 0 {
			params.Set("page", strconv.Itoa(opts.Page))
		}
	}

	path := fmt.Sprintf("/wp-json/wp/v2/%s?%s", contentType, params.Encode())
	body, err := c.Get(ctx, path)
	if err != nil {
		return nil, err
	}

	var posts []Post
	if err := json.Unmarshal(body, &posts); err != nil {
		return nil, fmt.Errorf("failed to parse %s response: %w", contentType, err)
	}

	return posts, nil
}

// GetCurrentUser returns the authenticated user.
func (c *Client) GetCurrentUser(ctx context.Context) (*User, error) {
	body, err := c.Get(ctx, "/wp-json/wp/v2/users/me")
	if err != nil {
		return nil, err
	}

	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("failed to parse user response: %w", err)
	}

	return &user, nil
}
