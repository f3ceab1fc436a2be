package events

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListenerStoreDeduplicatesSameListener(t *testing.T) {
	s := NewListenerStore()
	calls := 0
	l := NewEventListener(func(*Event) (any, error) {
		calls++
		return nil, nil
	})
	s.AddEventListener("click", l)
	s.AddEventListener("click", l)
	assert.Len(t, s.Listeners("click"), 1)

	s.Dispatch(NewEvent("click", nil), nil)
	assert.Equal(t, 1, calls)
}

func TestListenerStoreRemove(t *testing.T) {
	s := NewListenerStore()
	a := NewEventListener(func(*Event) (any, error) { return nil, nil })
	b := NewEventListener(func(*Event) (any, error) { return nil, nil })
	s.AddEventListener("click", a)
	s.AddEventListener("click", b)

	s.RemoveEventListener("click", a)
	assert.Equal(t, []*EventListener{b}, s.Listeners("click"))

	// removing under another type or twice does nothing
	s.RemoveEventListener("keyup", b)
	s.RemoveEventListener("click", a)
	assert.Equal(t, []*EventListener{b}, s.Listeners("click"))

	s.RemoveEventListener("click", b)
	assert.Empty(t, s.Listeners("click"))
	assert.Empty(t, s.Types())
}

func TestListenerStoreDispatchOrderAndErrors(t *testing.T) {
	s := NewListenerStore()
	var order []string
	boom := errors.New("boom")
	s.AddEventListener("x", NewEventListener(func(*Event) (any, error) {
		order = append(order, "first")
		return nil, boom
	}))
	s.AddEventListener("x", NewEventListener(func(*Event) (any, error) {
		order = append(order, "second")
		return nil, nil
	}))

	var reported []error
	ok := s.Dispatch(NewEvent("x", nil), func(_ *Event, err error) {
		reported = append(reported, err)
	})
	assert.True(t, ok)
	assert.Equal(t, []string{"first", "second"}, order)
	assert.Equal(t, []error{boom}, reported)
}

func TestListenerStoreFalsePreventsDefault(t *testing.T) {
	s := NewListenerStore()
	s.AddEventListener("submit", NewEventListener(func(*Event) (any, error) {
		return false, nil
	}))

	assert.False(t, s.Dispatch(NewCancelableEvent("submit", nil), nil))
	// not cancelable: the returned false is ignored
	assert.True(t, s.Dispatch(NewEvent("submit", nil), nil))
}
