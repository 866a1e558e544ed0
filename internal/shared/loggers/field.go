package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpRoute  = "http_route"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldRunID      = "run_id"
	FieldJob        = "job"
	FieldCollection = "collection"
	FieldRecordID   = "record_id"
	FieldMetric     = "metric"
	FieldReason     = "reason"
	FieldScanned    = "scanned"
	FieldFormFactor = "form_factor"
)
