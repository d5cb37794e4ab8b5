package constvars

import "time"

type ContextKey string

const (
	ResourceAuth          = "auth"
	ResourcePatients      = "patients"
	ResourceAppointments  = "appointments"
	ResourceExpenses      = "expenses"
	ResourceUsers         = "users"
	ResourceBilling       = "billing"
	ResourceMedications   = "medications"
	ResourcePrescriptions = "prescriptions"
	ResourceMedicalNotes  = "medical-notes"
	ResourceSettings      = "settings"
)

// Store names, used as log fields and error slot labels.
const (
	StorePatients        = "patients"
	StoreAppointments    = "appointments"
	StoreExpenses        = "expenses"
	StorePendingExpenses = "pendingExpenses"
	StoreUsers           = "users"
	StoreBills           = "bills"
	StoreMedications     = "medications"
)

const (
	AppointmentStatusScheduled   = "scheduled"
	AppointmentStatusCompleted   = "completed"
	AppointmentStatusCancelled   = "cancelled"
	AppointmentStatusRescheduled = "rescheduled"
)

// Session slot keys. currentUser and user must always hold the same identity.
const (
	SessionSlotCurrentUser = "currentUser"
	SessionSlotUser        = "user"
	SessionSlotLoginTime   = "loginTime"
)

const (
	SessionMaxAge          = 5 * time.Hour
	SessionKeyTTL          = 7 * 24 * time.Hour
	SessionCookieName      = "dashboard_session"
	SessionKeyPrefix       = "dashboard:session:"
	SessionEventsKeyPrefix = "dashboard:session-events:"
)

const (
	RouteLogin     = "/login"
	RouteRegister  = "/register"
	RouteLogout    = "/logout"
	RouteDashboard = "/dashboard"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
	CONTEXT_IDENTITY_KEY             ContextKey = "identity"
)

const (
	REQUEST_ID_PREFIX = "DENT_SVC_"
)
