package worker

import (
	"go.uber.org/zap"

	"github.com/orgdesk/org-service/internal/events"
	"github.com/orgdesk/org-service/internal/service"
)

// StartNotificationWorker subscribes the organization change logger to dispatcher.
func StartNotificationWorker(dispatcher events.Dispatcher, logger *zap.Logger) *service.NotificationService {
	if dispatcher == nil {
		return nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	notifications := service.NewNotificationService(dispatcher, logger.Named("notifications"))
	notifications.RegisterHandlers()
	return notifications
}
