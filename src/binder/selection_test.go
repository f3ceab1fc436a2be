package binder

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onevent-go/onevent/src/pkg/events"
)

func TestSelectionOnEvent(t *testing.T) {
	doc := parse(t, `<button on-click="one"></button><button on-click="two" on-hover="h"></button>`)
	ev := &recordingEvaluator{}
	logger, hook := quietLogger()
	b := New(ev, WithLogger(logger))

	sel, err := b.Select(doc, "button")
	require.NoError(t, err)
	require.Equal(t, 2, sel.Len())

	click := func() {
		for _, el := range doc.All() {
			el.DispatchEvent(events.NewEvent("click", nil))
			el.DispatchEvent(events.NewEvent("hover", nil))
		}
	}

	// unbound elements are bound on first use, then deactivated
	sel.OnEvent("deactivate")
	for _, t2 := range sel.Targets() {
		_, ok := b.Lookup(t2)
		assert.True(t, ok)
	}
	click()
	assert.Empty(t, ev.runs)

	sel.OnEvent("activate", "click")
	click()
	var sources []string
	for _, r := range ev.runs {
		sources = append(sources, r.source)
	}
	assert.Equal(t, []string{"one", "two"}, sources)

	sel.OnEvent("explode")
	require.Len(t, hook.AllEntries(), 2)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, "Unknown action: explode", hook.LastEntry().Message)
}

func TestSelectInvalidSelector(t *testing.T) {
	doc := parse(t, `<p></p>`)
	logger, _ := quietLogger()
	_, err := New(&recordingEvaluator{}, WithLogger(logger)).Select(doc, "p[")
	assert.Error(t, err)
}
