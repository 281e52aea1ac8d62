package ajeitaiapi

import (
	"context"
	"encoding/json"
	"net/http"
)

// SubscribePush POST /push/subscribe. Тело - PushSubscription браузера как есть.
func (c *Client) SubscribePush(ctx context.Context, token string, subscription json.RawMessage) error {
	return c.send(ctx, http.MethodPost, token, "/push/subscribe", subscription, nil)
}
