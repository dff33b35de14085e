package steps

import (
	types "github.com/yyoonchul/murmur-blog/internal/domain"
)

// ResponderCase classifies a triggering comment for responder selection.
type ResponderCase int

const (
	// CaseTopLevel: the trigger has no parent.
	CaseTopLevel ResponderCase = iota
	// CaseParentPersona: the parent exists and a persona wrote it.
	CaseParentPersona
	// CaseParentUser: the parent exists and the user wrote it.
	CaseParentUser
	// CaseParentMissing: the parent id does not resolve.
	CaseParentMissing
)

func (c ResponderCase) String() string {
	switch c {
	case CaseTopLevel:
		return "top_level"
	case CaseParentPersona:
		return "parent_persona"
	case CaseParentUser:
		return "parent_user"
	case CaseParentMissing:
		return "parent_missing"
	default:
		return "unknown"
	}
}

// ClassifyTrigger decides which responder case applies to trigger.
func ClassifyTrigger(comments []types.Comment, trigger types.Comment) (ResponderCase, *types.Comment) {
	if trigger.ParentID == "" {
		return CaseTopLevel, nil
	}
	for i := range comments {
		if comments[i].ID != trigger.ParentID {
			continue
		}
		parent := comments[i]
		if parent.IsUser() {
			return CaseParentUser, &parent
		}
		return CaseParentPersona, &parent
	}
	return CaseParentMissing, nil
}

type responderPolicy func(roster types.Roster, parent *types.Comment, rnd Rand) string

var responderPolicies = map[ResponderCase]responderPolicy{
	CaseParentPersona: func(_ types.Roster, parent *types.Comment, _ Rand) string { return parent.PersonaID },
	CaseParentUser:    randomResponder,
	CaseParentMissing: randomResponder,
	CaseTopLevel:      randomResponder,
}

func randomResponder(roster types.Roster, _ *types.Comment, rnd Rand) string {
	if len(roster.Personas) == 0 {
		return ""
	}
	if rnd == nil {
		rnd = SystemRand
	}
	return roster.Personas[rnd.IntN(len(roster.Personas))].ID
}

// SelectResponder picks the persona that answers trigger. ok is false when the
// roster is empty or the chosen persona is not in it.
func SelectResponder(roster types.Roster, comments []types.Comment, trigger types.Comment, rnd Rand) (persona types.Persona, c ResponderCase, ok bool) {
	c, parent := ClassifyTrigger(comments, trigger)
	if roster.IsEmpty() {
		return types.Persona{}, c, false
	}
	id := responderPolicies[c](roster, parent, rnd)
	persona, ok = roster.Find(id)
	return persona, c, ok
}
