package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventDepartamentoCreated EventType = "departamento_created"
	EventDepartamentoUpdated EventType = "departamento_updated"
	EventDepartamentoDeleted EventType = "departamento_deleted"
	EventEmpleadoAdded       EventType = "empleado_added"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID             string      `json:"id"`
	Type           EventType   `json:"type"`
	DepartamentoID int64       `json:"departamento_id"`
	Timestamp      time.Time   `json:"timestamp"`
	Payload        interface{} `json:"payload"`
}

// NewEvent stamps an event with a fresh id and the current time.
func NewEvent(eventType EventType, departamentoID int64, payload interface{}) Event {
	return Event{
		ID:             uuid.NewString(),
		Type:           eventType,
		DepartamentoID: departamentoID,
		Timestamp:      time.Now().UTC(),
		Payload:        payload,
	}
}

// DepartamentoPayload describes the department state after a write.
type DepartamentoPayload struct {
	Nombre    string `json:"nombre"`
	EmpresaID int64  `json:"empresa_id"`
	Upsert    bool   `json:"upsert,omitempty"`
}

// EmpleadoAddedPayload payload.
type EmpleadoAddedPayload struct {
	EmpleadoID int64  `json:"empleado_id"`
	Nombre     string `json:"nombre"`
	Puesto     string `json:"puesto"`
}
