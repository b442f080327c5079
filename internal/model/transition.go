package model

// ExchangeRole is an actor's relation to a specific exchange.
type ExchangeRole string

const (
	RoleTeacher ExchangeRole = "TEACHER"
	RoleLearner ExchangeRole = "LEARNER"
)

type transition struct {
	From ExchangeStatus
	To   ExchangeStatus
}

// transitionTable maps each permitted status transition to the roles
// allowed to perform it. Pairs absent from the table are invalid,
// which covers terminal-state mutations and skipped states. Adding a
// status or widening a rule is a data change here, not new control
// flow.
var transitionTable = map[transition][]ExchangeRole{
	{ExchangeStatusPending, ExchangeStatusInProgress}:   {RoleTeacher},
	{ExchangeStatusPending, ExchangeStatusCancelled}:    {RoleTeacher, RoleLearner},
	{ExchangeStatusInProgress, ExchangeStatusCompleted}: {RoleTeacher},
	{ExchangeStatusInProgress, ExchangeStatusCancelled}: {RoleTeacher, RoleLearner},
}

// TransitionAllowed reports whether from -> to is a permitted
// transition at all, regardless of actor.
func TransitionAllowed(from, to ExchangeStatus) bool {
	_, ok := transitionTable[transition{from, to}]
	return ok
}

// RolesForTransition returns the roles permitted to perform from -> to,
// or nil when the transition itself is invalid.
func RolesForTransition(from, to ExchangeStatus) []ExchangeRole {
	return transitionTable[transition{from, to}]
}

// RoleCanTransition reports whether any of the actor's roles permits
// from -> to.
func RoleCanTransition(from, to ExchangeStatus, roles []ExchangeRole) bool {
	allowed := transitionTable[transition{from, to}]
	for _, a := range allowed {
		for _, r := range roles {
			if a == r {
				return true
			}
		}
	}
	return false
}
