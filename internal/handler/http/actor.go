package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffsync/leave-backend-go/internal/domain/user"
)

var errNoActor = errors.New("no authenticated user in request context")

// actorFromRequest builds the acting user from verified JWT claims. The
// service layer re-checks the admin bit; this is just the extraction.
func actorFromRequest(r *http.Request) (user.Actor, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return user.Actor{}, err
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return user.Actor{}, errNoActor
	}

	admin, _ := claims["is_admin"].(bool)

	return user.Actor{ID: userID, Admin: admin}, nil
}
