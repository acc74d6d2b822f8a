package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/tritiya141-ux/project-ai-interview-system/internal/models"
)

// ErrEmptyInput is returned when a required free-text field is blank. The
// caller's state is left untouched.
var ErrEmptyInput = errors.New("required text is empty")

const pastedListPlaceholder = "As described in the job description"

// JDGenerator produces job-description documents, either by wrapping pasted
// free text or by expanding a title into a canned template.
type JDGenerator struct {
	policy *bluemonday.Policy
}

// NewJDGenerator constructs a generator. Pasted content is stripped of any
// markup before it is stored.
func NewJDGenerator() *JDGenerator {
	return &JDGenerator{policy: bluemonday.StrictPolicy()}
}

// FromPastedText wraps the pasted paragraph verbatim as the document purpose,
// with placeholder entries pointing back at the free text.
func (g *JDGenerator) FromPastedText(text string) (models.JobDescription, error) {
	cleaned := strings.TrimSpace(g.policy.Sanitize(text))
	if cleaned == "" {
		return models.JobDescription{}, ErrEmptyInput
	}

	return models.JobDescription{
		Purpose:          cleaned,
		Education:        []string{pastedListPlaceholder},
		Experience:       []string{pastedListPlaceholder},
		Responsibilities: []string{pastedListPlaceholder},
		Skills:           []string{"See full JD for details"},
	}, nil
}

// FromTitle expands a position title into the generic template document.
// The output is deterministic: the same title always yields the same content.
func (g *JDGenerator) FromTitle(title string) (models.JobDescription, error) {
	cleaned := strings.TrimSpace(g.policy.Sanitize(title))
	if cleaned == "" {
		return models.JobDescription{}, ErrEmptyInput
	}

	return models.JobDescription{
		Purpose: fmt.Sprintf("Lead and contribute to %s initiatives. Collaborate across teams to "+
			"deliver high-quality results aligned with organizational goals.", cleaned),
		Education: []string{
			"Bachelor's degree in a relevant field",
			"Advanced certifications preferred",
		},
		Experience: []string{
			"3+ years of relevant professional experience",
			"Demonstrated ability to work in cross-functional teams",
		},
		Responsibilities: []string{
			"Execute core duties related to the role",
			"Collaborate with stakeholders on project deliverables",
			"Maintain documentation and reporting standards",
			"Contribute to continuous improvement initiatives",
		},
		Skills: []string{"Communication", "Problem Solving", "Teamwork", "Adaptability"},
	}, nil
}
