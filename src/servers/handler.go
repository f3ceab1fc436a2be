package servers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v2"

	"github.com/onevent-go/onevent/src/binder"
	"github.com/onevent-go/onevent/src/configs"
	"github.com/onevent-go/onevent/src/consts"
	"github.com/onevent-go/onevent/src/dom"
	"github.com/onevent-go/onevent/src/instance"
	"github.com/onevent-go/onevent/src/pkg/events"
	"github.com/onevent-go/onevent/src/script"
)

type commonResp struct {
	ErrNo  int    `json:"err_no"`
	ErrMsg string `json:"err_msg"`
	Data   any    `json:"data"`
}

func writeJSON(w http.ResponseWriter, obj any) {
	b, err := json.Marshal(obj)
	if err != nil {
		writeMsg(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(b)
}

func writeMsg(w http.ResponseWriter, code int, msg string) {
	b, _ := json.Marshal(commonResp{ErrNo: code, ErrMsg: msg})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(b)
}

// ElementView is the JSON shape of a bound element.
type ElementView struct {
	Control   string            `json:"control"`
	ID        string            `json:"id,omitempty"`
	Tag       string            `json:"tag"`
	Bindings  []binder.Binding  `json:"bindings"`
	NameMap   map[string]string `json:"name_map"`
	Listening []string          `json:"listening"`
	HTML      string            `json:"html"`
}

func NewElementView(c *binder.Control) ElementView {
	view := ElementView{
		Control:   c.ID,
		Bindings:  c.Bindings(),
		NameMap:   c.NameMap(),
		Listening: []string{},
	}
	if el, ok := c.Target().(*dom.Element); ok {
		view.ID = el.ID()
		view.Tag = el.TagName()
		view.HTML = el.OuterHTML()
		for _, t := range el.ListenerTypes() {
			view.Listening = append(view.Listening, string(t))
		}
	}
	return view
}

// boundElements lists bound elements of the document in document order.
func boundElements(inst *instance.Instance) []*binder.Control {
	var ret []*binder.Control
	for _, el := range inst.Document.All() {
		if c, ok := inst.Binder.Lookup(el); ok {
			ret = append(ret, c)
		}
	}
	return ret
}

// findControl resolves {id} as a control ID first, then as an element id.
func findControl(inst *instance.Instance, id string) (*binder.Control, bool) {
	if c, ok := inst.Binder.LookupID(id); ok {
		return c, true
	}
	el := inst.Document.GetElementByID(id)
	if el == nil {
		return nil, false
	}
	return inst.Binder.Lookup(el)
}

func getInfo(writer http.ResponseWriter, r *http.Request) {
	writeJSON(writer, consts.AppInfo)
}

func getAllElements(writer http.ResponseWriter, r *http.Request) {
	inst := instance.GetInstance(r.Context())
	inst.Lock.Lock()
	defer inst.Lock.Unlock()
	views := make([]ElementView, 0)
	for _, c := range boundElements(inst) {
		views = append(views, NewElementView(c))
	}
	writeJSON(writer, views)
}

func getElement(writer http.ResponseWriter, r *http.Request) {
	inst := instance.GetInstance(r.Context())
	inst.Lock.Lock()
	defer inst.Lock.Unlock()
	c, ok := findControl(inst, mux.Vars(r)["id"])
	if !ok {
		writeMsg(writer, http.StatusNotFound, "element not found")
		return
	}
	writeJSON(writer, NewElementView(c))
}

// parseElementAction runs activate/deactivate, optionally limited by ?event=.
func parseElementAction(writer http.ResponseWriter, r *http.Request) {
	inst := instance.GetInstance(r.Context())
	vars := mux.Vars(r)
	inst.Lock.Lock()
	defer inst.Lock.Unlock()
	c, ok := findControl(inst, vars["id"])
	if !ok {
		writeMsg(writer, http.StatusNotFound, "element not found")
		return
	}
	names := r.URL.Query()["event"]
	switch vars["action"] {
	case consts.ActionEnable:
		c.Activate(names...)
	case consts.ActionDisable:
		c.Deactivate(names...)
	default:
		writeMsg(writer, http.StatusBadRequest, fmt.Sprintf("Unknown action: %s", vars["action"]))
		return
	}
	writeJSON(writer, NewElementView(c))
}

func dispatchEvent(writer http.ResponseWriter, r *http.Request) {
	inst := instance.GetInstance(r.Context())
	b, err := io.ReadAll(r.Body)
	if err != nil {
		writeMsg(writer, http.StatusBadRequest, err.Error())
		return
	}
	if !gjson.ValidBytes(b) {
		writeMsg(writer, http.StatusBadRequest, "invalid json")
		return
	}
	body := gjson.ParseBytes(b)
	typ := body.Get("type").String()
	if typ == "" {
		writeMsg(writer, http.StatusBadRequest, "event type is required")
		return
	}

	inst.Lock.Lock()
	defer inst.Lock.Unlock()
	c, ok := findControl(inst, mux.Vars(r)["id"])
	if !ok {
		writeMsg(writer, http.StatusNotFound, "element not found")
		return
	}
	el, ok := c.Target().(*dom.Element)
	if !ok {
		writeMsg(writer, http.StatusBadRequest, "target can not dispatch events")
		return
	}
	evt := events.NewEvent(events.EventType(typ), body.Get("detail").Value())
	evt.Cancelable = body.Get("cancelable").Bool()
	notCanceled := el.DispatchEvent(evt)
	writeJSON(writer, map[string]any{
		"type":              typ,
		"not_canceled":      notCanceled,
		"default_prevented": evt.DefaultPrevented(),
	})
}

func getGlobal(writer http.ResponseWriter, r *http.Request) {
	inst := instance.GetInstance(r.Context())
	o, ok := inst.Evaluator.(*script.OttoEvaluator)
	if !ok {
		writeMsg(writer, http.StatusNotFound, "globals are only available with the otto engine")
		return
	}
	inst.Lock.Lock()
	defer inst.Lock.Unlock()
	v, err := o.Get(mux.Vars(r)["name"])
	if err != nil {
		writeMsg(writer, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(writer, map[string]any{"value": v})
}

func getDocument(writer http.ResponseWriter, r *http.Request) {
	inst := instance.GetInstance(r.Context())
	inst.Lock.Lock()
	defer inst.Lock.Unlock()
	writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := inst.Document.Render(writer); err != nil {
		inst.Logger.WithError(err).Error("failed to render document")
	}
}

// getConfig returns the running config as yaml.
func getConfig(writer http.ResponseWriter, r *http.Request) {
	cfg := configs.GetCurrentConfig()
	if cfg == nil {
		cfg = instance.GetInstance(r.Context()).Config
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		writeMsg(writer, http.StatusInternalServerError, err.Error())
		return
	}
	writer.Header().Set("Content-Type", "application/x-yaml")
	_, _ = writer.Write(b)
}
