package constants

// Stage names one step of the ingestion pipeline. Used as a metrics label.
type Stage string

const (
	StageExtract   Stage = "extract"
	StageNormalize Stage = "normalize"
	StagePersist   Stage = "persist"
)

// Outcome is the terminal result of one ingestion or retrieval.
type Outcome string

// Stable values (exported as metric label values).
const (
	OutcomeOK                Outcome = "ok"
	OutcomeBadRequest        Outcome = "bad_request"
	OutcomeExtractFailed     Outcome = "extract_failed"
	OutcomeNormalizeFailed   Outcome = "normalize_failed"
	OutcomeSchemaParseFailed Outcome = "schema_parse_failed"
	OutcomePersistFailed     Outcome = "persist_failed"
	OutcomeNotFound          Outcome = "not_found"
)
