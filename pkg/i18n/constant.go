package i18n

const (
	ERROR_INTERNAL            = "error.internal"
	ERROR_NOTFOUND            = "error.notfound"
	ERROR_INVALIDARGUMENT     = "error.invalidargument"
	ERROR_EXIST               = "error.exist"
	ERROR_TOO_MANY_REQUESTS   = "error.tooManyRequests"
	ERROR_UNSUPPORTED_FEATURE = "error.unsupported.feature"

	ERROR_REPORT_IN_FLIGHT = "error.report.inflight"
	ERROR_NOT_SIGNED_IN    = "error.session.notsignedin"
)
