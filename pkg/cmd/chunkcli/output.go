package chunkcli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gookit/color"
	"gopkg.in/yaml.v3"
)

// Record is one chunk as written by the split command.
type Record struct {
	// Run identifies the invocation that produced the record.
	Run     string   `json:"run" yaml:"run"`
	File    string   `json:"file" yaml:"file"`
	Index   int      `json:"index" yaml:"index"`
	Items   []string `json:"items" yaml:"items"`
	HasMore bool     `json:"hasMore" yaml:"hasMore"`
}

type encoder interface {
	Encode(Record) error
	// Close flushes buffered output.
	Close() error
}

func newEncoder(format string, colored bool, w io.Writer) (encoder, error) {
	switch format {
	case "text":
		return &textEncoder{w: w, colored: colored}, nil
	case "json":
		return jsonEncoder{json.NewEncoder(w)}, nil
	case "yaml":
		e := yaml.NewEncoder(w)
		e.SetIndent(2)
		return yamlEncoder{e}, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

type jsonEncoder struct{ *json.Encoder }

func (e jsonEncoder) Encode(r Record) error { return e.Encoder.Encode(r) }
func (jsonEncoder) Close() error            { return nil }

type yamlEncoder struct{ *yaml.Encoder }

func (e yamlEncoder) Encode(r Record) error { return e.Encoder.Encode(r) }

// textEncoder writes a header line followed by the items of a record.
type textEncoder struct {
	w       io.Writer
	colored bool
}

func (e *textEncoder) Encode(r Record) error {
	more := "last"
	if r.HasMore {
		more = "more"
	}
	header := fmt.Sprintf("== %s #%d (%d items, %s)", r.File, r.Index, len(r.Items), more)
	if e.colored {
		header = color.Cyan.Sprint(header)
	}
	if _, err := fmt.Fprintln(e.w, header); err != nil {
		return err
	}
	for _, item := range r.Items {
		if _, err := fmt.Fprintln(e.w, item); err != nil {
			return err
		}
	}
	return nil
}

func (e *textEncoder) Close() error { return nil }
