package cli

import "kat/internal/config"

// Flags holds command-line flags
type Flags struct {
	Quiet        bool
	Leaderboards string
	Game         string

	CardName        string
	CardCategory    string
	CardTags        string
	CardSearch      string
	CardTitle       string
	CardDescription string
	CardHref        string
	CardOut         string
	NoPills         bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Quiet:           f.Quiet,
		Leaderboards:    f.Leaderboards,
		Game:            f.Game,
		CardName:        f.CardName,
		CardCategory:    f.CardCategory,
		CardTags:        f.CardTags,
		CardSearch:      f.CardSearch,
		CardTitle:       f.CardTitle,
		CardDescription: f.CardDescription,
		CardHref:        f.CardHref,
		CardOut:         f.CardOut,
		NoPills:         f.NoPills,
	}
}
