package apierrors

const (
	MsgInvalidArgument      = "invalidArgument"
	MsgReferentialIntegrity = "referentialIntegrity"
	MsgUnexpectedError      = "unexpectedError"
)

const (
	CodeInvalidArgument = 400
	CodeNotFound        = 404
	CodeInternal        = 500
)
