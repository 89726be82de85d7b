package queries

import (
	"errors"

	"dilivry/internal/core/domain/model/kernel"
	"dilivry/internal/pkg/errs"
)

// ErrUserProfileQueryIsNotConstructed is returned when a
// UserProfileQuery was not created via NewUserProfileQuery.
var ErrUserProfileQueryIsNotConstructed = errors.New(
	"UserProfileQuery must be created via NewUserProfileQuery constructor",
)

// UserProfileQuery looks up a known participant by id.
type UserProfileQuery struct {
	userID kernel.UserID

	guard kernel.ConstructorGuard
}

// NewUserProfileQuery validates the input and builds the query.
func NewUserProfileQuery(userID kernel.UserID) (UserProfileQuery, error) {
	if userID == 0 {
		return UserProfileQuery{}, errs.NewValueIsRequiredError("userId")
	}

	return UserProfileQuery{
		userID: userID,
		guard:  kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q UserProfileQuery) Validate() error {
	return q.guard.Validate(ErrUserProfileQueryIsNotConstructed)
}

// UserID returns the participant being looked up.
func (q UserProfileQuery) UserID() kernel.UserID {
	return q.userID
}
