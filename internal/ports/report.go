package ports

import (
	"io"

	"update-vendor-files/internal/types"
)

type ReportWriterPort interface {
	WriteReport(w io.Writer, format types.OutputFormat, report types.PackReport) error
}
