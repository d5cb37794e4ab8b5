package constvars

const (
	URLParamID   = "id"
	URLParamRole = "role"
)

const (
	URLQueryParamTimeout = "timeout"
)
