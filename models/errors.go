package models

// Typed errors the helper maps onto HTTP status codes. Each carries an
// optional message; the zero value renders a sensible default.

type ErrorNotFound struct{ Message string }

func (e ErrorNotFound) Error() string {
	if e.Message == "" {
		return "resource not found"
	}
	return e.Message
}

type ErrorForbidden struct{ Message string }

func (e ErrorForbidden) Error() string {
	if e.Message == "" {
		return "forbidden"
	}
	return e.Message
}

type ErrorUnauthorized struct{ Message string }

func (e ErrorUnauthorized) Error() string {
	if e.Message == "" {
		return "unauthorized"
	}
	return e.Message
}

type ErrorConflict struct{ Message string }

func (e ErrorConflict) Error() string {
	if e.Message == "" {
		return "conflict"
	}
	return e.Message
}

type ErrorInternalServer struct{ Message string }

func (e ErrorInternalServer) Error() string {
	if e.Message == "" {
		return "internal server error"
	}
	return e.Message
}
