package output

// Output format names shared by the CLI layer and the writers.
const (
	FormatText  = "text"
	FormatTSV   = "tsv" // alias of text; both emit plain TSV
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// EstimateHeader is the canonical header row for estimate text/TSV output.
// Keep this as the single source of truth; all writers should use it.
const EstimateHeader = "length\tmismatches\tp_distance\tt0\tstep0\tt_hat\tlog_likelihood\tevals\tjc_formula"

// SweepHeader is the canonical header row for sweep text/TSV output.
const SweepHeader = "t\tlog_likelihood"
