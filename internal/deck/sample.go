package deck

// sampleCard is a card without an id; Store.Add assigns ids on load.
type sampleCard struct {
	title    string
	answer   string
	category string
}

var sampleCards = []sampleCard{
	{"What is React?", "React is a JavaScript library for building user interfaces.", "JavaScript"},
	{"What is JSX?", "JSX is a syntax extension for JavaScript that looks similar to XML or HTML.", "JavaScript"},
	{"What is a Closure in JavaScript?", "A closure is a function that retains access to its outer scope even after the outer function has finished executing.", "JavaScript"},
	{"What is the difference between `let`, `const`, and `var`?", "`var` is function-scoped, while `let` and `const` are block-scoped. `const` cannot be reassigned.", "JavaScript"},
	{"What is the purpose of `useState` in React?", "`useState` is a React Hook that allows function components to manage local state.", "JavaScript"},
	{"What is the capital of the Philippines?", "Manila", "Geography - philippines"},
	{"What is the largest island in the Philippines?", "Luzon", "Geography - philippines"},
	{"Which volcano in the Philippines is known as the 'Perfect Cone'?", "Mayon Volcano", "Geography - philippines"},
	{"What is the longest river in the Philippines?", "Cagayan River", "Geography - philippines"},
	{"What is the highest mountain in the Philippines?", "Mount Apo", "Geography - philippines"},
	{"What is the smallest active volcano in the world, located in the Philippines?", "Taal Volcano", "Geography - philippines"},
	{"Which city is known as the 'Summer Capital of the Philippines'?", "Baguio City", "Geography - philippines"},
}

// LoadSample appends the bundled demo cards to the store and returns how
// many were added.
func (s *Store) LoadSample() int {
	for _, c := range sampleCards {
		if _, err := s.Add(c.title, c.answer, c.category); err != nil {
			s.log.Warn("skipping sample card", "title", c.title, "error", err)
		}
	}
	return len(sampleCards)
}
