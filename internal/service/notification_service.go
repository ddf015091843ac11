package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/orgdesk/org-service/internal/events"
)

// NotificationService reports organization changes published on the dispatcher.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n == nil || n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventDepartamentoCreated, n.handleDepartamentoChange)
	n.dispatcher.Subscribe(events.EventDepartamentoUpdated, n.handleDepartamentoChange)
	n.dispatcher.Subscribe(events.EventDepartamentoDeleted, n.handleDepartamentoChange)
	n.dispatcher.Subscribe(events.EventEmpleadoAdded, n.handleEmpleadoAdded)
}

func (n *NotificationService) handleDepartamentoChange(_ context.Context, event events.Event) error {
	n.logger.Info(string(event.Type),
		zap.String("event_id", event.ID),
		zap.Int64("departamento_id", event.DepartamentoID),
		zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleEmpleadoAdded(_ context.Context, event events.Event) error {
	n.logger.Info("empleado_added",
		zap.String("event_id", event.ID),
		zap.Int64("departamento_id", event.DepartamentoID),
		zap.Any("payload", event.Payload))
	return nil
}
