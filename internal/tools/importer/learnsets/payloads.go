package learnsetimporter

// speciesRecord is one species entry in a data file.
type speciesRecord struct {
	ID             int  `yaml:"id"`
	FormCount      int  `yaml:"form_count"`
	BaseFriendship int  `yaml:"base_friendship"`
	ScanAllForms   bool `yaml:"scan_all_forms"`
	HatchBonusMove int  `yaml:"hatch_bonus_move"`
}

// levelUpRecord is one level-up entry in a learn set.
type levelUpRecord struct {
	Move  int `yaml:"move"`
	Level int `yaml:"level"`
}

// learnsetRecord is the learn set for one species+form in one version.
type learnsetRecord struct {
	Version string          `yaml:"version"`
	Species int             `yaml:"species"`
	Form    int             `yaml:"form"`
	LevelUp []levelUpRecord `yaml:"level_up"`
	Machine []int           `yaml:"machine"`
	Tutor   []int           `yaml:"tutor"`
	Egg     []int           `yaml:"egg"`
}

// payload is the top-level structure of a learnset data file.
type payload struct {
	Species   []speciesRecord  `yaml:"species"`
	Learnsets []learnsetRecord `yaml:"learnsets"`
}
