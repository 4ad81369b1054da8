package adapters

import (
	"fmt"
	"io"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"update-vendor-files/internal/ports"
	"update-vendor-files/internal/types"
)

type ReportWriterAdapter struct{}

func NewReportWriterAdapter() ReportWriterAdapter {
	return ReportWriterAdapter{}
}

// WriteReport renders report. The text format is one controller per line so
// it can be piped into other tools; yaml is the full report document.
func (a ReportWriterAdapter) WriteReport(w io.Writer, format types.OutputFormat, report types.PackReport) error {
	switch format {
	case types.OutputFormatText, "":
		for _, name := range report.Controllers {
			if _, err := fmt.Fprintln(w, name); err != nil {
				return errbuilder.New().
					WithCode(errbuilder.CodeInternal).
					WithMsg("failed to write report").
					WithCause(err)
			}
		}
		return nil
	case types.OutputFormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(report); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to marshal report").
				WithCause(err)
		}
		if err := encoder.Close(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to write report").
				WithCause(err)
		}
		return nil
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported output format %q", format))
	}
}

var _ ports.ReportWriterPort = ReportWriterAdapter{}
