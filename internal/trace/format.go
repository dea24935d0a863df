package trace

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Format selects the wire shape of emitted events.
type Format uint8

const (
	// FormatAuto picks a format from the output path extension:
	// .ndjson, .json/.chrome.json, otherwise text.
	FormatAuto Format = iota
	// FormatText is the human-readable line format.
	FormatText
	// FormatNDJSON is newline-delimited JSON, one event per line.
	FormatNDJSON
	// FormatChrome is the Chrome trace-event array, loadable in
	// chrome://tracing and Perfetto.
	FormatChrome
)

// processStart anchors the relative timestamps of the text format.
var processStart = time.Now()

// FormatEvent renders one event. The returned slice ends with '\n' for
// the line formats; Chrome elements carry no separator, the stream
// tracer owns the commas.
func FormatEvent(ev *Event, format Format) []byte {
	switch format {
	case FormatNDJSON:
		return formatNDJSON(ev)
	case FormatChrome:
		return formatChrome(ev)
	default:
		return formatText(ev)
	}
}

type jsonEvent struct {
	Time     string            `json:"time"`
	Seq      uint64            `json:"seq"`
	Kind     string            `json:"kind"`
	Scope    string            `json:"scope"`
	SpanID   uint64            `json:"span_id"`
	ParentID uint64            `json:"parent_id,omitempty"`
	GID      uint64            `json:"gid,omitempty"`
	Name     string            `json:"name"`
	Detail   string            `json:"detail,omitempty"`
	Extra    map[string]string `json:"extra,omitempty"`
}

func formatNDJSON(ev *Event) []byte {
	j := jsonEvent{
		Time:     ev.Time.Format("2006-01-02T15:04:05.000000Z07:00"),
		Seq:      ev.Seq,
		Kind:     ev.Kind.String(),
		Scope:    ev.Scope.String(),
		SpanID:   ev.SpanID,
		ParentID: ev.ParentID,
		GID:      ev.GID,
		Name:     ev.Name,
		Detail:   ev.Detail,
		Extra:    ev.Extra,
	}

	data, _ := json.Marshal(j)
	return append(data, '\n')
}

// chromeEvent is one element of the Chrome traceEvents array.
type chromeEvent struct {
	Name  string            `json:"name"`
	Phase string            `json:"ph"`
	TS    int64             `json:"ts"` // микросекунды от старта процесса
	PID   int               `json:"pid"`
	TID   uint64            `json:"tid"`
	Cat   string            `json:"cat"`
	Args  map[string]string `json:"args,omitempty"`
}

func formatChrome(ev *Event) []byte {
	phase := "i"
	switch ev.Kind {
	case KindSpanBegin:
		phase = "B"
	case KindSpanEnd:
		phase = "E"
	}
	c := chromeEvent{
		Name:  ev.Name,
		Phase: phase,
		TS:    ev.Time.Sub(processStart).Microseconds(),
		PID:   1,
		TID:   ev.GID,
		Cat:   ev.Scope.String(),
		Args:  ev.Extra,
	}
	if ev.Detail != "" {
		if c.Args == nil {
			c.Args = map[string]string{}
		}
		c.Args["detail"] = ev.Detail
	}
	data, _ := json.Marshal(c)
	return data
}

// formatText renders "[elapsed] →/←/• name (detail) {k=v}".
func formatText(ev *Event) []byte {
	var sb strings.Builder

	elapsed := float64(ev.Time.Sub(processStart)) / float64(time.Millisecond)
	fmt.Fprintf(&sb, "[%9.3fms] ", elapsed)

	if ev.ParentID > 0 {
		sb.WriteString("  ")
	}

	switch ev.Kind {
	case KindSpanBegin:
		sb.WriteString("→ ")
	case KindSpanEnd:
		sb.WriteString("← ")
	case KindHeartbeat:
		sb.WriteString("♡ ")
	default:
		sb.WriteString("• ")
	}

	sb.WriteString(ev.Name)
	if ev.Detail != "" {
		sb.WriteString(" (")
		sb.WriteString(ev.Detail)
		sb.WriteString(")")
	}

	if len(ev.Extra) > 0 {
		sb.WriteString(" {")
		first := true
		for k, v := range ev.Extra {
			if !first {
				sb.WriteString(", ")
			}
			sb.WriteString(k)
			sb.WriteString("=")
			sb.WriteString(v)
			first = false
		}
		sb.WriteString("}")
	}

	sb.WriteString("\n")
	return []byte(sb.String())
}
