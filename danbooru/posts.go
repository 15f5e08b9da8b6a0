package danbooru

import (
	"bytes"
	"context"
	"iter"
	"strconv"

	"github.com/go-errors/errors"
	"github.com/goccy/go-json"
	"github.com/imroc/req/v3"
)

type PostsRequest struct {
	httpClient  *req.Client
	tags        string
	credentials *Credentials
	pageLimit   int
	limit       int
}

func (d *Danbooru) GetPosts() *PostsRequest {
	return &PostsRequest{
		httpClient: d.httpClient,
		pageLimit:  1000,
	}
}

func (r *PostsRequest) WithTags(tags string) *PostsRequest {
	r.tags = tags
	return r
}

func (r *PostsRequest) WithCredentials(credentials *Credentials) *PostsRequest {
	r.credentials = credentials
	return r
}

func (r *PostsRequest) WithPageLimit(pageLimit int) *PostsRequest {
	r.pageLimit = pageLimit
	return r
}

// WithLimit sets the number of posts per page. Zero leaves it to the server.
func (r *PostsRequest) WithLimit(limit int) *PostsRequest {
	r.limit = limit
	return r
}

// Send fetches a single page. An empty slice means there are no more results.
func (r *PostsRequest) Send(ctx context.Context, page int) ([]*Post, error) {
	rq := r.httpClient.Get("/posts.json").
		SetQueryParam("tags", r.tags).
		SetQueryParam("page", strconv.Itoa(page))
	if r.limit > 0 {
		rq = rq.SetQueryParam("limit", strconv.Itoa(r.limit))
	}
	if r.credentials != nil {
		rq = rq.SetQueryParams(r.credentials.queryParams())
	}

	rs := rq.Do(ctx)
	if rs.Err != nil {
		return nil, errors.New(rs.Err)
	}

	body := bytes.TrimSpace(rs.Bytes())

	var posts []*Post
	if err := json.Unmarshal(body, &posts); err == nil {
		return posts, nil
	}

	var failure failureResponse
	if err := json.Unmarshal(body, &failure); err == nil && failure.Success != nil && !*failure.Success {
		return nil, &UpstreamAPIError{StatusCode: rs.StatusCode, Message: failure.Message}
	}

	return nil, errors.Errorf("invalid api response for page %d (status %d)", page, rs.StatusCode)
}

// Stream starts a lazy walk over pages 1..pageLimit.
func (r *PostsRequest) Stream(ctx context.Context) *PostStream {
	return &PostStream{request: r, ctx: ctx}
}

// PostStream yields posts page by page. It keeps its position: ranging over
// All again resumes where the previous loop stopped, and an exhausted stream
// yields nothing.
type PostStream struct {
	request *PostsRequest
	ctx     context.Context
	page    int
	pending []*Post
	done    bool
}

func (s *PostStream) PagesFetched() int {
	return s.page
}

func (s *PostStream) All() iter.Seq2[*Post, error] {
	return func(yield func(*Post, error) bool) {
		for {
			if len(s.pending) == 0 {
				if s.done {
					return
				}
				if err := s.fetch(); err != nil {
					yield(nil, err)
					return
				}
				continue
			}
			post := s.pending[0]
			s.pending = s.pending[1:]
			if !yield(post, nil) {
				return
			}
		}
	}
}

func (s *PostStream) fetch() error {
	if s.page >= s.request.pageLimit {
		s.done = true
		return nil
	}
	s.page++
	posts, err := s.request.Send(s.ctx, s.page)
	if err != nil {
		s.done = true
		return err
	}
	if len(posts) == 0 {
		s.done = true
		return nil
	}
	s.pending = posts
	return nil
}
