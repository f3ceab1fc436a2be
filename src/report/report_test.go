package report

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onevent-go/onevent/src/binder"
	"github.com/onevent-go/onevent/src/configs"
	"github.com/onevent-go/onevent/src/dom"
	"github.com/onevent-go/onevent/src/script"
)

func TestRenderDefaultTemplate(t *testing.T) {
	doc, err := dom.ParseString(`<div id="panel" on-open:map="customopen" on-open="count++"></div><p on-click="go()"></p><span></span>`)
	require.NoError(t, err)
	logger, _ := test.NewNullLogger()
	b := binder.New(script.NewRegistry(), binder.WithLogger(logger))
	b.AutoInit(doc)
	doc.Load()

	entries := Collect(doc, b)
	require.Len(t, entries, 2)
	assert.Equal(t, "panel", entries[0].ID)
	assert.Equal(t, []string{"customopen"}, entries[0].Listening)

	var sb strings.Builder
	require.NoError(t, Render(&sb, configs.DefaultReportTmpl, entries))
	out := sb.String()
	assert.Contains(t, out, "div#panel ["+entries[0].Control[:8]+"]")
	assert.Contains(t, out, `on-open -> customopen: "count++"`)
	assert.Contains(t, out, `on-click: "go()"`)
}

func TestRenderInvalidTemplate(t *testing.T) {
	assert.Error(t, Render(&strings.Builder{}, "{{ .Nope", nil))
}
