package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Cards
	AddCard    string `yaml:"add_card"`
	EditCard   string `yaml:"edit_card"`
	DeleteCard string `yaml:"delete_card"`
	ViewCard   string `yaml:"view_card"`
	MoveCard   string `yaml:"move_card"`

	// Lists
	CreateList string `yaml:"create_list"`
	RenameList string `yaml:"rename_list"`
	DeleteList string `yaml:"delete_list"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Navigation
	PrevList string `yaml:"prev_list"`
	NextList string `yaml:"next_list"`
	PrevCard string `yaml:"prev_card"`
	NextCard string `yaml:"next_card"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Cards
		AddCard:    "a",
		EditCard:   "e",
		DeleteCard: "d",
		ViewCard:   " ",
		MoveCard:   "m",

		// Lists
		CreateList: "C",
		RenameList: "R",
		DeleteList: "X",

		// Forms
		SaveForm: "ctrl+s",

		// Navigation
		PrevList: "h",
		NextList: "l",
		PrevCard: "k",
		NextCard: "j",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddCard == "" {
		k.AddCard = defaults.AddCard
	}
	if k.EditCard == "" {
		k.EditCard = defaults.EditCard
	}
	if k.DeleteCard == "" {
		k.DeleteCard = defaults.DeleteCard
	}
	if k.ViewCard == "" {
		k.ViewCard = defaults.ViewCard
	}
	if k.MoveCard == "" {
		k.MoveCard = defaults.MoveCard
	}
	if k.CreateList == "" {
		k.CreateList = defaults.CreateList
	}
	if k.RenameList == "" {
		k.RenameList = defaults.RenameList
	}
	if k.DeleteList == "" {
		k.DeleteList = defaults.DeleteList
	}
	if k.SaveForm == "" {
		k.SaveForm = defaults.SaveForm
	}
	if k.PrevList == "" {
		k.PrevList = defaults.PrevList
	}
	if k.NextList == "" {
		k.NextList = defaults.NextList
	}
	if k.PrevCard == "" {
		k.PrevCard = defaults.PrevCard
	}
	if k.NextCard == "" {
		k.NextCard = defaults.NextCard
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
