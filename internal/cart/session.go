package cart

import (
	"context"
	"log/slog"
	"sync"

	cartmetrics "codedrip/internal/cart/metrics"
	id "codedrip/pkg/domain"
)

// SessionManager holds one reconciliation controller per device. The device
// is the anonymous ownership scope; when requests for a device start
// carrying a different resolved identity, the manager runs the controller's
// identity transition before handing it out.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*session
	local    func(deviceID string) LocalStore
	remote   RemoteStore
	logger   *slog.Logger
	metrics  *cartmetrics.Metrics
}

type session struct {
	controller *Controller
	userID     id.UserID
}

func NewSessionManager(local func(deviceID string) LocalStore, remote RemoteStore, logger *slog.Logger, metrics *cartmetrics.Metrics) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*session),
		local:    local,
		remote:   remote,
		logger:   logger,
		metrics:  metrics,
	}
}

// Controller returns the device's controller, constructing it from the local
// mirror on first sight and re-running the identity transition whenever the
// resolved identity changed since the previous request.
func (m *SessionManager) Controller(ctx context.Context, deviceID string, userID id.UserID) *Controller {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[deviceID]
	if !ok {
		controller := NewController(ctx, m.local(deviceID), m.remote, m.logger, WithMetrics(m.metrics))
		sess = &session{controller: controller}
		m.sessions[deviceID] = sess
		if !userID.IsZero() {
			sess.controller.SetIdentity(ctx, userID)
			sess.userID = userID
		}
		return sess.controller
	}

	if sess.userID != userID {
		sess.controller.SetIdentity(ctx, userID)
		sess.userID = userID
	}
	return sess.controller
}
