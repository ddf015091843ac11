package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryDispatcher(t *testing.T) {
	d := NewInMemoryDispatcher()
	var got []string

	d.Subscribe(EventDepartamentoCreated, func(_ context.Context, e Event) error {
		got = append(got, "first:"+string(e.Type))
		return errors.New("first failed")
	})
	d.Subscribe(EventDepartamentoCreated, func(_ context.Context, e Event) error {
		got = append(got, "second:"+string(e.Type))
		return nil
	})
	d.Subscribe(EventDepartamentoDeleted, func(context.Context, Event) error {
		t.Fatal("unexpected handler")
		return nil
	})

	err := d.Publish(context.Background(), NewEvent(EventDepartamentoCreated, 5, nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "first failed")
	assert.Equal(t, []string{"first:departamento_created", "second:departamento_created"}, got)
}

func TestNewEvent(t *testing.T) {
	e := NewEvent(EventEmpleadoAdded, 3, EmpleadoAddedPayload{EmpleadoID: 9})
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, int64(3), e.DepartamentoID)
	assert.False(t, e.Timestamp.IsZero())
}
