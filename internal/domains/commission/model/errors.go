package model

import (
	"artisthub-backend/internal/shared/apperror"
)

func ErrCommissionNotFound(id string) error {
	return apperror.NotFound("commission %s not found", id)
}

func ErrUserNotFound(field, id string) error {
	return apperror.NotFound("%s: user %s not found", field, id)
}

func ErrNotParticipant() error {
	return apperror.Forbidden("only the artist or the commissioner can act on this commission")
}

func ErrActorNotAllowed(action Action, actor Actor) error {
	return apperror.Forbidden(string(actor) + " cannot " + string(action) + " this commission")
}

func ErrIllegalTransition(from, to Status) error {
	return apperror.InvalidArgument("status: cannot move commission from %s to %s", from, to)
}

func ErrActionNotAvailable(action Action, current Status) error {
	return apperror.InvalidArgument("status: cannot %s a commission that is %s", action, current)
}

func ErrPriceMissing() error {
	return apperror.InvalidArgument("price: commission has no price yet")
}

func ErrIllegalStatus(raw string) error {
	return apperror.InvalidArgument("status: %q is not one of %v", raw, StatusNames())
}
