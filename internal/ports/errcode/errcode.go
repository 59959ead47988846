package errcode

type Code string

const (
	NotFoundData  Code = "DATA_NOT_FOUND"
	MalformedData Code = "DATA_MALFORMED"

	InvalidCurrency Code = "INVALID_CURRENCY"
	BadRequest      Code = "BAD_REQUEST"

	UpstreamDown Code = "UPSTREAM_UNAVAILABLE"
	Internal     Code = "INTERNAL_ERROR"
)
