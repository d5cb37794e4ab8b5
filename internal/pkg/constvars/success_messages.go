package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	LoginSuccess    = "successfully login"
	RegisterSuccess = "successfully registered"
	LogoutSuccess   = "successfully logout"
	SessionResolved = "session resolved"

	// Dashboard messages
	DashboardSummarySuccess = "dashboard summary"
	CollectionGetSuccess    = "get %s successfully"
	ResourceGetSuccess      = "get %s successfully"
	SettingsUpdatedSuccess  = "settings updated"
)

// Notification messages shown to the dashboard user after a mutation.
const (
	NotifyInvalidInput         = "Invalid request"
	NotifyPatientCreated       = "Patient created"
	NotifyPatientUpdated       = "Patient updated"
	NotifyPatientDeleted       = "Patient deleted"
	NotifyAppointmentCreated   = "Appointment created"
	NotifyAppointmentUpdated   = "Appointment updated"
	NotifyAppointmentDeleted   = "Appointment deleted"
	NotifyAppointmentCompleted = "Appointment marked as completed"
	NotifyAppointmentCancelled = "Appointment cancelled"
	NotifyAppointmentResched   = "Appointment rescheduled"
	NotifyExpenseCreated       = "Expense created"
	NotifyExpenseUpdated       = "Expense updated"
	NotifyExpenseDeleted       = "Expense deleted"
	NotifyExpenseApproved      = "Expense approved"
	NotifyExpenseRejected      = "Expense rejected"
	NotifyUserCreated          = "User created"
	NotifyUserUpdated          = "User updated"
	NotifyUserDeleted          = "User deleted"
	NotifyBillCreated          = "Bill created"
	NotifyBillUpdated          = "Bill updated"
	NotifyBillDeleted          = "Bill deleted"
	NotifyMedicationCreated    = "Medication created"
	NotifyMedicationUpdated    = "Medication updated"
	NotifyMedicationDeleted    = "Medication deleted"
	NotifySettingsUpdated      = "Settings updated"

	NotifyPatientCreateFailed     = "Failed to create patient"
	NotifyPatientUpdateFailed     = "Failed to update patient"
	NotifyPatientDeleteFailed     = "Failed to delete patient"
	NotifyAppointmentCreateFailed = "Failed to create appointment"
	NotifyAppointmentUpdateFailed = "Failed to update appointment"
	NotifyAppointmentDeleteFailed = "Failed to delete appointment"
	NotifyExpenseCreateFailed     = "Failed to create expense"
	NotifyExpenseUpdateFailed     = "Failed to update expense"
	NotifyExpenseDeleteFailed     = "Failed to delete expense"
	NotifyExpenseApproveFailed    = "Failed to approve expense"
	NotifyExpenseRejectFailed     = "Failed to reject expense"
	NotifyUserCreateFailed        = "Failed to create user"
	NotifyUserUpdateFailed        = "Failed to update user"
	NotifyUserDeleteFailed        = "Failed to delete user"
	NotifyBillCreateFailed        = "Failed to create bill"
	NotifyBillUpdateFailed        = "Failed to update bill"
	NotifyBillDeleteFailed        = "Failed to delete bill"
	NotifyMedicationCreateFailed  = "Failed to create medication"
	NotifyMedicationUpdateFailed  = "Failed to update medication"
	NotifyMedicationDeleteFailed  = "Failed to delete medication"
	NotifySettingsUpdateFailed    = "Failed to update settings"
)
