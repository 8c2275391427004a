package list_blocked_periods

import (
	"net/url"
	"time"

	"github.com/Am1ne12/JobConnect/internal/service/availability/models"
)

// parseQuery читает необязательные границы from / to в RFC3339
func parseQuery(query url.Values, userID int64) (*models.ListBlockedPeriodsRequest, error) {
	req := &models.ListBlockedPeriodsRequest{UserID: userID}

	if raw := query.Get("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, err
		}
		req.From = &from
	}

	if raw := query.Get("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, err
		}
		req.To = &to
	}

	return req, nil
}
