package diagfmt

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Msgpack writes the same document as JSON in MessagePack encoding.
func Msgpack(w io.Writer, reports []FileReport, opts JSONOpts) error {
	return msgpack.NewEncoder(w).Encode(BuildReportOutput(reports, opts))
}
