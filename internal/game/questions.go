package game

// Template is one reusable question definition. Options carry up to four
// entries; the configured option count trims them per question.
type Template struct {
	Text         string
	Options      []string
	CorrectIndex int
}

// Question is a single asked instance, built from a template for one turn
// and discarded afterwards.
type Question struct {
	ID           int
	Text         string
	Options      []string
	CorrectIndex int
	Points       int
}

// QuestionBank holds the template pool. It is immutable after creation
// and safe to share across concurrent game sessions.
type QuestionBank struct {
	templates []Template
}

// NewBank wraps the given templates; with none provided the built-in pool
// is used.
func NewBank(templates []Template) *QuestionBank {
	if len(templates) == 0 {
		templates = DefaultTemplates()
	}
	return &QuestionBank{templates: templates}
}

// Size returns the number of templates in the pool.
func (b *QuestionBank) Size() int { return len(b.templates) }

// Next picks a template uniformly at random and adapts it to the option
// count: the first optionCount options are kept in their original order.
// When the correct answer would be trimmed off, it is moved into slot 0
// and the index remapped there, so the option at index 0 is genuinely the
// correct one. Points come from the caller, decoupling question content
// from the wheel's point value.
func (b *QuestionBank) Next(rng Rand, points, optionCount int) Question {
	tpl := b.templates[rng.IntN(len(b.templates))]

	if optionCount > len(tpl.Options) {
		optionCount = len(tpl.Options)
	}
	options := make([]string, optionCount)
	copy(options, tpl.Options[:optionCount])

	correct := tpl.CorrectIndex
	if correct >= optionCount {
		options[0] = tpl.Options[tpl.CorrectIndex]
		correct = 0
	}

	return Question{
		Text:         tpl.Text,
		Options:      options,
		CorrectIndex: correct,
		Points:       points,
	}
}

// DefaultTemplates returns the built-in general-knowledge pool, used when
// no external template source is configured.
func DefaultTemplates() []Template {
	return []Template{
		{
			Text:         "What is the capital of Turkey?",
			Options:      []string{"Istanbul", "Ankara", "Izmir", "Bursa"},
			CorrectIndex: 1,
		},
		{
			Text:         "Which is the largest ocean on Earth?",
			Options:      []string{"Atlantic", "Pacific", "Indian", "Arctic"},
			CorrectIndex: 1,
		},
		{
			Text:         "How fast does light travel per second?",
			Options:      []string{"300,000 km", "150,000 km", "450,000 km", "600,000 km"},
			CorrectIndex: 0,
		},
		{
			Text:         "Which planet is closest to the Sun?",
			Options:      []string{"Venus", "Mercury", "Mars", "Earth"},
			CorrectIndex: 1,
		},
		{
			Text:         "What does DNA stand for?",
			Options:      []string{"Deoxyribonucleic acid", "Dynamic nuclear acid", "Natural nucleic acid", "Deep nuclear acid"},
			CorrectIndex: 0,
		},
		{
			Text:         "Which element has the symbol Au?",
			Options:      []string{"Silver", "Gold", "Aluminium", "Argon"},
			CorrectIndex: 1,
		},
		{
			Text:         "What is the highest mountain on Earth?",
			Options:      []string{"K2", "Everest", "Kangchenjunga", "Annapurna"},
			CorrectIndex: 1,
		},
		{
			Text:         "In which year did the conquest of Istanbul take place?",
			Options:      []string{"1453", "1451", "1455", "1449"},
			CorrectIndex: 0,
		},
		{
			Text:         "In which organelle does photosynthesis happen?",
			Options:      []string{"Mitochondria", "Chloroplast", "Ribosome", "Nucleus"},
			CorrectIndex: 1,
		},
		{
			Text:         "Which planet is known as the Red Planet?",
			Options:      []string{"Venus", "Mars", "Jupiter", "Saturn"},
			CorrectIndex: 1,
		},
	}
}
