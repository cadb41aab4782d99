package prompter

import (
	"github.com/AlecAivazis/survey/v2"
)

// Prompter asks the user questions on the terminal.
type Prompter interface {
	Confirm(message string) (bool, error)
}

type prompter struct{}

func NewPrompter() Prompter {
	return &prompter{}
}

// Confirm asks a yes/no question. The default answer is no.
func (p *prompter) Confirm(message string) (bool, error) {
	result := false
	prompt := &survey.Confirm{
		Message: message,
	}
	err := survey.AskOne(prompt, &result)
	return result, err
}
