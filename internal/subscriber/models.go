// Package subscriber keeps the drop-notification mailing list.
package subscriber

import (
	"time"

	id "codedrip/pkg/domain"
)

type Subscriber struct {
	ID        id.SubscriberID `json:"id"`
	Email     string          `json:"email"`
	CreatedAt time.Time       `json:"createdAt"`
}
