package log

// Common field names for structured logging.
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldSuccess    = "success"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldRunID      = "run_id"
	FieldRows       = "rows"
	FieldCategory   = "category"
	FieldBackend    = "backend"
	FieldSource     = "source"
)

// Components defines standard component names.
const (
	ComponentApp      = "app"
	ComponentHTTP     = "http"
	ComponentIngest   = "ingest"
	ComponentClassify = "classify"
	ComponentPipeline = "pipeline"
	ComponentReport   = "report"
	ComponentAMQP     = "amqp"
	ComponentWorker   = "worker"
	ComponentLedger   = "ledger"
)

// Operations defines standard operation names.
const (
	OpNormalize = "normalize"
	OpClassify  = "classify"
	OpAggregate = "aggregate"
	OpAdvise    = "advise"
	OpAssemble  = "assemble"
	OpRender    = "render"
	OpRead      = "read"
	OpPublish   = "publish"
	OpConsume   = "consume"
	OpStartup   = "startup"
	OpShutdown  = "shutdown"
)
