package report

// Report is the JSON summary of a batch run.
type Report struct {
	Version     int              `json:"version"`
	RunID       string           `json:"run_id"`
	GeneratedAt string           `json:"generated_at"`
	Profile     string           `json:"profile"`
	Settings    Settings         `json:"settings"`
	Entries     map[string]Entry `json:"entries"`
	Stats       Stats            `json:"stats"`
}

// Settings captures the parameters every entry was processed with.
type Settings struct {
	MaxWidth  int     `json:"max_width"`
	MaxHeight int     `json:"max_height"`
	Quality   float64 `json:"quality,omitempty"`
	Format    string  `json:"format"`
	Degrees   int     `json:"degrees,omitempty"`
	TargetKB  float64 `json:"target_kb,omitempty"`
	Workers   int     `json:"workers"`
}

// Entry describes one source image and its result.
type Entry struct {
	Source  SourceInfo `json:"source"`
	Output  *Output    `json:"output,omitempty"`
	Skipped string     `json:"skipped,omitempty"` // validation failure
	Error   string     `json:"error,omitempty"`   // processing failure
}

// SourceInfo holds metadata about the input file.
type SourceInfo struct {
	Path   string `json:"path"`
	Type   string `json:"type"`
	Size   int64  `json:"size"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Output is the encoded result written for an entry.
type Output struct {
	Format           string  `json:"format"`
	Width            int     `json:"width"`
	Height           int     `json:"height"`
	Size             int64   `json:"size"`    // bytes on disk
	Quality          float64 `json:"quality"` // 0-1
	Iterations       int     `json:"iterations,omitempty"`
	CompressionRatio float64 `json:"compression_ratio"`
	Digest           string  `json:"digest"` // xxhash64, 16 hex chars
	Path             string  `json:"path"`   // relative to the report
}

// Stats aggregates run metrics.
type Stats struct {
	TotalFiles       int   `json:"total_files"`
	Processed        int   `json:"processed"`
	Skipped          int   `json:"skipped"`
	Failed           int   `json:"failed"`
	TotalInputBytes  int64 `json:"total_input_bytes"`
	TotalOutputBytes int64 `json:"total_output_bytes"`
}

// SupportedVersion is the current schema version.
const SupportedVersion = 1

// FileName is the report's name inside an output directory.
const FileName = "rri.report.json"
