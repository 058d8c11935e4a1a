package service

// InvalidRequestError is a business-rule violation surfaced to the client as
// a 400 with a human-readable detail string. Malformed-input and domain
// violations share this one shape.
type InvalidRequestError struct {
	Detail string
}

func (e *InvalidRequestError) Error() string {
	return e.Detail
}

func invalidRequest(detail string) error {
	return &InvalidRequestError{Detail: detail}
}

// NotFoundError is surfaced to the client as a 404.
type NotFoundError struct {
	Detail string
}

func (e *NotFoundError) Error() string {
	return e.Detail
}

func notFound(detail string) error {
	return &NotFoundError{Detail: detail}
}
