package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidUsernameOrPassword     = "invalid username or password"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you don't have permission to access this page"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientBackendUnavailable            = "the clinic service is unavailable, please try again"
)

// Error messages for developers
const (
	ErrDevInvalidInput          = "invalid input"
	ErrDevCannotParseJSON       = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON     = "cannot convert struct or other data types to JSON"
	ErrDevValidationFailed      = "validation failed"
	ErrDevInvalidRequestPayload = "invalid request payload"

	ErrDevURLParamIDValidationFailed = "parameter %s validation failed"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthInvalidSession        = "invalid session"
	ErrDevAuthPermissionDenied      = "permission denied"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthRoleNotRecognized     = "role is not recognized by the dashboard"

	// Backend messages
	ErrDevBackendRequest      = "failed to send request to clinic backend"
	ErrDevBackendHTTPStatus   = "HTTP %d"
	ErrDevBackendDecode       = "failed to decode %s response from clinic backend"
	ErrDevBackendRateLimitCtx = "context done while waiting for backend rate limiter"

	// Redis messages
	ErrDevRedisSetData      = "failed to SET data into redis"
	ErrDevRedisGetData      = "failed to GET data from redis"
	ErrDevRedisDeleteData   = "failed to DELETE data from redis"
	ErrDevRedisTransaction  = "failed to run MULTI transaction in redis"
	ErrDevRedisPublish      = "failed to PUBLISH message into redis"
	ErrDevRedisSubscribe    = "failed to SUBSCRIBE to redis channel"
	ErrDevSessionSlotsParse = "failed to parse session slots"

	// Messaging messages
	ErrDevMessagingPublish = "failed to publish message into queue %s"

	// Server messages
	ErrDevServerInternalError    = "internal server error"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerStreamingUnsup   = "response writer does not support streaming"
)

// Store failure fallbacks, used when the error carries no message
const (
	ErrStoreFetchPatients        = "Failed to fetch patients"
	ErrStoreFetchAppointments    = "Failed to fetch appointments"
	ErrStoreFetchExpenses        = "Failed to fetch expenses"
	ErrStoreFetchPendingExpenses = "Failed to fetch pending expenses"
	ErrStoreFetchUsers           = "Failed to fetch users"
	ErrStoreFetchBills           = "Failed to fetch bills"
	ErrStoreFetchMedications     = "Failed to fetch medications"
)

const (
	ErrFileLocationUnknown = "file location unknown"
	ErrLineLocationUnknown = "line location unknown"
	ErrFunctionNameUnknown = "function name unknown"
)

const (
	ErrEnvParsing     = "Error parsing %s: %v, will use default value"
	ErrEnvKeyNotExist = "Error getting env key: %s, will use default value"
)
