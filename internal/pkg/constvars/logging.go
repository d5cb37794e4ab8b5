package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingSessionIDKey    = "session_id"
	LoggingMethodKey       = "method"
	LoggingEndpointKey     = "endpoint"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingStoreKey        = "store"
	LoggingResourceKey     = "resource"
	LoggingResourceIDKey   = "resource_id"
	LoggingCountKey        = "count"
	LoggingSequenceKey     = "sequence"
	LoggingUsernameKey     = "username"
	LoggingRoleKey         = "role"
	LoggingDecisionKey     = "decision"
	LoggingQueueNameKey    = "queue_name"
	LoggingNotificationKey = "notification"
)
