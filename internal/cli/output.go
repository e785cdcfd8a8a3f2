package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/logrusorgru/aurora/v4"
	"github.com/tidwall/pretty"
)

// jsonResult is the JSON form of a command outcome.
type jsonResult struct {
	Command string `json:"command"`
	Input   string `json:"input"`
	Result  string `json:"result"`
}

type printer struct {
	out  io.Writer
	err  io.Writer
	json bool
	au   *aurora.Aurora
}

func newPrinter(out, err io.Writer, asJSON, colors bool) *printer {
	return &printer{
		out:  out,
		err:  err,
		json: asJSON,
		au:   aurora.New(aurora.WithColors(colors)),
	}
}

func (p *printer) print(command, input, value string) error {
	if !p.json {
		_, err := fmt.Fprintln(p.out, value)
		return err
	}
	b, err := json.Marshal(jsonResult{Command: command, Input: input, Result: value})
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	_, err = p.out.Write(pretty.Pretty(b))
	return err
}

func (p *printer) fail(err error) {
	msg := p.au.Colorize("error: "+err.Error(), aurora.RedFg|aurora.BrightFg|aurora.BoldFm)
	fmt.Fprintln(p.err, msg)
}
