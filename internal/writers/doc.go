// Package writers turns estimate and sweep records into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (TSV columns, JSON/JSONL).
//   - The core packages stay model-only; Pipeline stays orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
