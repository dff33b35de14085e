package blog

type Persona struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Role        string `json:"role" yaml:"role"`
	Emoji       string `json:"emoji" yaml:"emoji"`
	Color       string `json:"color" yaml:"color"`
	BgColor     string `json:"bgColor" yaml:"bgColor"`
	BorderColor string `json:"borderColor" yaml:"borderColor"`
	PromptFile  string `json:"promptFile" yaml:"promptFile"`

	// Loaded from PromptFile; never written to the roster file.
	PromptContent string `json:"promptContent" yaml:"-"`
}

type Roster struct {
	Personas            []Persona `json:"personas" yaml:"personas"`
	FeedbackOrder       []string  `json:"feedbackOrder" yaml:"feedbackOrder"`
	FeedbackOrderReason string    `json:"feedbackOrderReason" yaml:"feedbackOrderReason"`
}

func (r Roster) IsEmpty() bool { return len(r.Personas) == 0 }

func (r Roster) Find(id string) (Persona, bool) {
	for _, p := range r.Personas {
		if p.ID == id {
			return p, true
		}
	}
	return Persona{}, false
}

// DisplayNames maps persona id to display name.
func (r Roster) DisplayNames() map[string]string {
	out := make(map[string]string, len(r.Personas))
	for _, p := range r.Personas {
		out[p.ID] = p.Name
	}
	return out
}
