package report

import (
	"fmt"

	"github.com/aerissecure/scorechart/chart"
	"github.com/aerissecure/scorechart/docx"
	"github.com/aerissecure/scorechart/series"
)

// DefaultTitle heads the report below the institutional header.
const DefaultTitle = "Feedback Form"

// Institution is the header block printed above the report.
type Institution struct {
	Society   []string `yaml:"society"`    // lines above the name
	Name      string   `yaml:"name"`       // printed as the heading
	Address   []string `yaml:"address"`    // lines below the name
	LogoLeft  string   `yaml:"logo_left"`  // optional image URL or path
	LogoRight string   `yaml:"logo_right"` // optional image URL or path
}

// DefaultInstitution returns the stock header.
func DefaultInstitution() Institution {
	return Institution{
		Society: []string{"CHILDREN’S EDUCATIONAL SOCIETY"},
		Name:    "THE OXFORD COLLEGE OF SCIENCE",
		Address: []string{"HSR Layout, Bengaluru-560102"},
	}
}

// WithLetterhead replaces the header text with lh, keeping the logos. An
// empty letterhead leaves i unchanged.
func (i Institution) WithLetterhead(lh docx.Letterhead) Institution {
	if lh.Empty() {
		return i
	}
	i.Society = lh.Above
	i.Name = lh.Title
	i.Address = lh.Below
	return i
}

func (i Institution) String() string {
	return fmt.Sprintf("Society: %q, Name: %q, Address: %q", i.Society, i.Name, i.Address)
}

// Metadata are the form fields printed under the report title.
type Metadata struct {
	Faculty      string `yaml:"faculty"`
	Department   string `yaml:"department"`
	AcademicYear string `yaml:"academic_year"`
}

// Complete reports whether every field is filled in; a report is only
// produced for complete metadata.
func (m Metadata) Complete() bool {
	return len(m.Missing()) == 0
}

// Missing returns the labels of the empty fields, in form order.
func (m Metadata) Missing() []string {
	var missing []string
	if m.Faculty == "" {
		missing = append(missing, "Name Of Faculty")
	}
	if m.Department == "" {
		missing = append(missing, "Department")
	}
	if m.AcademicYear == "" {
		missing = append(missing, "Academic Year")
	}
	return missing
}

// Page is everything a rendered report shows.
type Page struct {
	Institution Institution
	Title       string
	Metadata    Metadata
	Result      series.Result
	Chart       chart.Options
}

// Heading returns the report title, DefaultTitle when unset.
func (p Page) Heading() string {
	if p.Title == "" {
		return DefaultTitle
	}
	return p.Title
}
