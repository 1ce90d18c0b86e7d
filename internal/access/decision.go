package access

import (
	"github.com/dtroode/storefront/internal/model"
)

// Decision is the outcome of the gate for one request.
type Decision int

const (
	DecisionAllow Decision = iota + 1
	// DecisionRedirectLogin means there is no usable session.
	DecisionRedirectLogin
	// DecisionRedirectHome means the session lacks the required role.
	DecisionRedirectHome
)

func (d Decision) String() string {
	switch d {
	case DecisionAllow:
		return "allow"
	case DecisionRedirectLogin:
		return "redirect_login"
	case DecisionRedirectHome:
		return "redirect_home"
	default:
		return "unknown"
	}
}

// Decide applies the gate rules. A nil claim means the request carried no
// valid session, whatever the reason.
func Decide(class Class, claim *model.SessionClaim) Decision {
	if class.Open() {
		return DecisionAllow
	}
	if claim == nil {
		return DecisionRedirectLogin
	}
	if class == ClassAdminProtected && !claim.IsAdmin() {
		return DecisionRedirectHome
	}
	return DecisionAllow
}
