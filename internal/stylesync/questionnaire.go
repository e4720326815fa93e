package stylesync

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// InitAnswers holds the first-run configuration collected by the questionnaire
type InitAnswers struct {
	Document      string
	Project       string
	Naming        string
	ColorTemplate string // Empty uses the built-in Go template
	TextTemplate  string // Empty uses the built-in Go template
	OutputDir     string
}

// DefaultInitAnswers returns the answers used when every question is skipped
func DefaultInitAnswers() InitAnswers {
	return InitAnswers{
		Document:  DefaultDocument,
		Project:   DefaultProjectDir,
		Naming:    NamingCamel,
		OutputDir: DefaultOutputDir,
	}
}

// QuestionState is a step of the questionnaire
type QuestionState int

// Questionnaire states, in the order they are asked
const (
	AskDocument QuestionState = iota
	AskProject
	AskNaming
	AskColorTemplate
	AskTextTemplate
	AskOutputDir
	QuestionsDone
)

// question is one transition: the prompt, how an answer is applied, and the
// next state. apply returns false to ask the same question again.
type question struct {
	prompt string
	apply  func(answers *InitAnswers, answer string) bool
	next   QuestionState
}

// keep stores a non-empty answer; an empty answer keeps the default
func keep(field func(*InitAnswers) *string) func(*InitAnswers, string) bool {
	return func(answers *InitAnswers, answer string) bool {
		if answer != "" {
			*field(answers) = answer
		}
		return true
	}
}

var questions = map[QuestionState]question{
	AskDocument: {
		prompt: "Path of the design document (.json or .css)",
		apply:  keep(func(a *InitAnswers) *string { return &a.Document }),
		next:   AskProject,
	},
	AskProject: {
		prompt: "Root of the project whose style references are updated",
		apply:  keep(func(a *InitAnswers) *string { return &a.Project }),
		next:   AskNaming,
	},
	AskNaming: {
		prompt: "Variable naming (camel, pascal, snake)",
		apply: func(a *InitAnswers, answer string) bool {
			if answer == "" {
				return true
			}
			if _, err := NamerFor(answer); err != nil {
				return false
			}
			a.Naming = answer
			return true
		},
		next: AskColorTemplate,
	},
	AskColorTemplate: {
		prompt: "Template for color styles (empty for the built-in Go template)",
		apply:  keep(func(a *InitAnswers) *string { return &a.ColorTemplate }),
		next:   AskTextTemplate,
	},
	AskTextTemplate: {
		prompt: "Template for text styles (empty for the built-in Go template)",
		apply:  keep(func(a *InitAnswers) *string { return &a.TextTemplate }),
		next:   AskOutputDir,
	},
	AskOutputDir: {
		prompt: "Folder for the generated style code",
		apply:  keep(func(a *InitAnswers) *string { return &a.OutputDir }),
		next:   QuestionsDone,
	},
}

// Questionnaire asks the first-run questions on out and reads answers from in
type Questionnaire struct {
	in  *bufio.Reader
	out io.Writer
}

// NewQuestionnaire creates a questionnaire
func NewQuestionnaire(in io.Reader, out io.Writer) *Questionnaire {
	return &Questionnaire{in: bufio.NewReader(in), out: out}
}

// Run walks the states from AskDocument to QuestionsDone. Answers are cleaned
// of escape characters and trailing whitespace. At end of input the remaining
// questions keep their defaults.
func (q *Questionnaire) Run(defaults InitAnswers) (InitAnswers, error) {
	answers := defaults

	for state := AskDocument; state != QuestionsDone; {
		current := questions[state]

		fmt.Fprintf(q.out, "\n%s [%s]\n", current.prompt, defaultFor(state, answers))

		line, err := q.in.ReadString('\n')
		if err != nil && err != io.EOF {
			return answers, fmt.Errorf("read answer: %w", err)
		}

		answer := RemoveTrailingWhitespace(RemoveEscapeCharacters(strings.TrimSuffix(line, "\n")))
		if !current.apply(&answers, answer) {
			fmt.Fprintf(q.out, "%q is not a valid answer\n", answer)
			if err == io.EOF {
				return answers, nil
			}
			continue
		}

		state = current.next
	}

	return answers, nil
}

// defaultFor returns the value shown as the default of a question
func defaultFor(state QuestionState, answers InitAnswers) string {
	switch state {
	case AskDocument:
		return answers.Document
	case AskProject:
		return answers.Project
	case AskNaming:
		return answers.Naming
	case AskColorTemplate:
		return orBuiltin(answers.ColorTemplate)
	case AskTextTemplate:
		return orBuiltin(answers.TextTemplate)
	case AskOutputDir:
		return answers.OutputDir
	}
	return ""
}

func orBuiltin(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
