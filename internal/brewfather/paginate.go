package brewfather

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"brewfather-mcp/internal/model"
)

const (
	// DefaultPageSize is used when the caller leaves Limit unset.
	DefaultPageSize = 50
	// MaxPages bounds the number of page requests of one list fetch.
	MaxPages = 10
)

// Paginate follows the start_after cursor of a list endpoint and returns every record it
// received, in order. A page shorter than the limit (or empty) ends the walk. After MaxPages
// full pages the records gathered so far are returned and a warning is logged, since more
// may exist upstream. Any failure aborts the walk and no records are returned.
// params is never modified.
func Paginate[T model.Record](ctx context.Context, c *Client, endpoint string, decode PageDecoder[T], params *ListQueryParams) ([]T, error) {
	current := params.clone()
	if current.Limit == 0 {
		current.Limit = DefaultPageSize
	}

	var all []T
	pages := 0
	exhausted := false
	for pages < MaxPages {
		body, err := c.get(ctx, endpoint, current.Encode())
		if err != nil {
			c.logger.WithError(err).WithField("endpoint", endpoint).Error("list page request failed")
			return nil, err
		}
		pages++
		c.metrics.observePage(endpoint)

		records, err := decode(body)
		if err != nil {
			var decErr *DecodeError
			if !errors.As(err, &decErr) {
				err = &DecodeError{Endpoint: endpoint, Err: err}
			}
			c.logger.WithError(err).WithField("endpoint", endpoint).Error("list page could not be decoded")
			return nil, err
		}
		all = append(all, records...)

		if len(records) == 0 || len(records) < current.Limit {
			exhausted = true
			break
		}
		current.StartAfter = records[len(records)-1].GetID()
	}

	if !exhausted {
		c.logger.WithFields(logrus.Fields{
			"endpoint":  endpoint,
			"max_pages": MaxPages,
			"total":     len(all),
		}).Warn("reached page limit, more items may be available")
		c.metrics.observeTruncated(endpoint)
	}

	c.logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"total":    len(all),
		"pages":    pages,
	}).Info("fetched list")

	return all, nil
}
