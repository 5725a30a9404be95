package ui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/FenadoAI/fv2-realty-chat-3swcmc/internal/models"
)

// formAction is the outcome of a form keystroke.
type formAction int

const (
	formNone formAction = iota
	formSubmit
	formCancel
)

// fieldLabels maps draft field keys to their form labels.
var fieldLabels = map[string]string{
	models.FieldTitle:        "Title",
	models.FieldDescription:  "Description",
	models.FieldPrice:        "Price ($)",
	models.FieldLocation:     "Location",
	models.FieldAddress:      "Address",
	models.FieldBedrooms:     "Bedrooms",
	models.FieldBathrooms:    "Bathrooms",
	models.FieldSqft:         "Square feet",
	models.FieldPropertyType: "Type (house|condo|apartment|townhouse)",
	models.FieldImageURL:     "Image URL",
	models.FieldAmenities:    "Amenities (comma separated)",
	models.FieldYearBuilt:    "Year built",
	models.FieldGarage:       "Garage spaces",
	models.FieldLotSize:      "Lot size (acres)",
	models.FieldMLSNumber:    "MLS number",
}

// formModel is the modal create/edit dialog bound to a Draft. Keystrokes
// merge into the draft without validation; coercion happens only when
// the panel submits the draft.
type formModel struct {
	theme  Theme
	draft  models.Draft
	inputs []textinput.Model
	focus  int
}

// newFormModel opens the dialog on the empty template.
func newFormModel(theme Theme) formModel {
	return buildForm(theme, models.Draft{})
}

// editFormModel opens the dialog with every field stringified from p.
func editFormModel(theme Theme, p models.Property) formModel {
	var d models.Draft
	d.LoadFromProperty(p)
	return buildForm(theme, d)
}

func buildForm(theme Theme, d models.Draft) formModel {
	inputs := make([]textinput.Model, len(models.DraftFields))
	for i, field := range models.DraftFields {
		in := textinput.New()
		in.Placeholder = fieldLabels[field]
		in.SetValue(d.Get(field))
		inputs[i] = in
	}
	return formModel{
		theme:  theme,
		draft:  d,
		inputs: inputs,
	}
}

// focusCmd focuses the first field when the dialog opens.
func (f formModel) focusCmd() tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	return f.inputs[0].Focus()
}

func (f formModel) update(msg tea.Msg) (formModel, formAction, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "esc":
			return f, formCancel, nil
		case "enter":
			return f, formSubmit, nil
		case "tab", "down":
			return f.moveFocus(1)
		case "shift+tab", "up":
			return f.moveFocus(-1)
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	f.draft.Set(models.DraftFields[f.focus], f.inputs[f.focus].Value())
	return f, formNone, cmd
}

func (f formModel) moveFocus(delta int) (formModel, formAction, tea.Cmd) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	return f, formNone, f.inputs[f.focus].Focus()
}

func (f formModel) view() string {
	var b strings.Builder

	title := "Add Property"
	if f.draft.Editing() {
		title = "Edit Property"
	}
	b.WriteString(f.theme.titleStyle().Render(title) + "\n\n")

	for i, field := range models.DraftFields {
		label := fieldLabels[field]
		if i == f.focus {
			b.WriteString(f.theme.selectedStyle().Render("> "+label) + "\n")
		} else {
			b.WriteString(f.theme.hintStyle().Render("  "+label) + "\n")
		}
		b.WriteString("  " + f.inputs[i].View() + "\n")
	}

	// Advisory only; the server stays the arbiter of what it accepts.
	if f.draft.PropertyType != "" && !models.ValidPropertyType(f.draft.PropertyType) {
		b.WriteString("\n" + f.theme.errorStyle().Render("Unknown type \""+f.draft.PropertyType+"\"; the server may reject it.") + "\n")
	}

	b.WriteString("\n" + f.theme.hintStyle().Render("enter save · esc cancel · tab next field"))
	return b.String()
}
