package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"

	"github.com/thenoetrevino/aftercare/internal/booking"
	"github.com/thenoetrevino/aftercare/internal/tui/components"
	"github.com/thenoetrevino/aftercare/internal/tui/layers"
	"github.com/thenoetrevino/aftercare/internal/tui/notifications"
	"github.com/thenoetrevino/aftercare/internal/tui/state"
)

const (
	pageMargin = 2

	backLinkText     = "‹ Regular aftercare program"
	pageHeading      = "How many weeks you like to continue?"
	pickerTitle      = "Please select your start date"
	startPlaceholder = "Select a start date"
)

// View renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func (m Model) View() tea.View {
	view := tea.NewView(m.render())
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion
	return view
}

// render composes the page, the active overlay and notifications.
func (m Model) render() string {
	if m.UiState.Width() == 0 {
		return "Loading..."
	}

	page := m.renderPage()
	ls := []*lipgloss.Layer{
		lipgloss.NewLayer(page.content),
		lipgloss.NewLayer(m.renderStatusBar()).Y(max(m.UiState.Height()-1, 0)),
	}

	switch m.UiState.Mode() {
	case state.PickerMode:
		if layer := layers.CreateCenteredLayer(m.renderPicker().content, m.UiState.Width(), m.UiState.Height()); layer != nil {
			ls = append(ls, layer)
		}
	case state.HelpMode:
		if layer := layers.CreateCenteredLayer(m.renderHelp(), m.UiState.Width(), m.UiState.Height()); layer != nil {
			ls = append(ls, layer)
		}
	}

	ls = append(ls, m.NotificationState.GetLayers(notifications.RenderFromState)...)

	return lipgloss.NewCanvas(ls...).Render()
}

// renderPage lays out the booking page.
func (m Model) renderPage() frame {
	width := m.UiState.Width()
	navbar := components.RenderTabs(components.NavTabs, components.NavActiveTab, width)

	s := newStack(pageMargin, lipgloss.Height(navbar))
	s.blank()
	s.mark(hitBackLink, 0, s.add(components.LinkStyle.Render(backLinkText)))
	s.blank()
	s.add(components.TitleStyle.Render(pageHeading))
	s.add(components.SubtitleStyle.Render(booking.SelectionLabel(m.AppState.Catalog().SessionDays)))
	s.blank()

	m.renderCards(s, width-2*pageMargin)
	s.blank()

	fields := []string{components.RenderField(components.FieldProps{
		Label:       "Start date",
		Value:       m.AppState.StartDate(),
		Placeholder: startPlaceholder,
		Active:      m.UiState.Mode() == state.PickerMode,
	})}
	if m.AppState.StartDate() != "" {
		fields = append(fields, components.RenderField(components.FieldProps{
			Label:       "End date",
			Value:       m.AppState.EndDate(),
			Placeholder: "-",
		}))
	}
	rects := s.row(components.CardGap, fields...)
	s.mark(hitStartField, 0, rects[0])
	if m.AppState.EndDate() != "" {
		s.add(components.SubtitleStyle.Render(booking.SummaryLabel(m.AppState.StartDate(), m.AppState.EndDate())))
	}
	s.blank()

	next := components.DisabledButtonStyle.Render("NEXT")
	if m.AppState.CanProceed() {
		next = components.ButtonStyle.Render("NEXT")
	}
	rects = s.row(components.ButtonGap+1,
		components.FooterStyle.Render(booking.FooterLabel(m.AppState.Selected())),
		components.SecondaryButtonStyle.Render("BACK"),
		next,
	)
	s.mark(hitBack, 0, rects[1])
	s.mark(hitNext, 0, rects[2])

	s.blank()
	s.add(m.help.View(m.keys.pageHelp()))

	return frame{
		content: lipgloss.JoinVertical(lipgloss.Left, navbar, s.render()),
		regions: s.regions,
	}
}

// renderCards lays the week cards out in as many rows as the width needs.
func (m Model) renderCards(s *stack, width int) {
	options := m.AppState.Options()
	if len(options) == 0 {
		return
	}

	cards := make([]string, len(options))
	for i, opt := range options {
		cards[i] = components.RenderCard(components.CardProps{
			Option:   opt,
			Selected: opt.ID == m.AppState.SelectedID(),
			Focused:  i == m.UiState.FocusedOption() && m.UiState.Mode() == state.NormalMode,
		})
	}

	cardWidth := lipgloss.Width(cards[0])
	perRow := max(1, (width+components.CardGap)/(cardWidth+components.CardGap))
	for start := 0; start < len(cards); start += perRow {
		end := min(start+perRow, len(cards))
		for j, r := range s.row(components.CardGap, cards[start:end]...) {
			s.mark(hitCard, start+j, r)
		}
	}
}

// pickerNote is the reminder under the wheel, following the live selection.
func (m Model) pickerNote() string {
	opt := m.AppState.Selected()
	if opt == nil {
		return ""
	}
	return booking.Note(opt.Weeks, m.Wheel.Selection().String(), m.AppState.Catalog().SessionDays)
}

// pickerBody lays out the inside of the date picker dialog from (0, 0).
func (m Model) pickerBody() *stack {
	innerWidth := layers.ModalWidth(m.UiState.Width()) - 6 // border and padding
	visible := m.Config.Picker.VisibleRows
	itemHeight := m.Config.Picker.ItemHeight
	widths := []int{components.DayColumnWidth, components.MonthColumnWidth, components.YearColumnWidth}

	s := newStack(0, 0)
	s.add(components.TitleStyle.Render(pickerTitle))
	s.blank()

	cols := make([]string, 0, 3)
	for i, c := range m.columns() {
		cols = append(cols, components.RenderWheelColumn(components.WheelColumnProps{
			Rows:        c.Render(),
			Offset:      c.Offset(),
			ItemHeight:  itemHeight,
			VisibleRows: visible,
			Width:       widths[i],
			Focused:     i == m.UiState.FocusedColumn(),
		}))
	}
	for i, r := range s.row(components.WheelColumnGap, cols...) {
		s.mark(hitColumn, i, r)
	}
	s.blank()

	s.add(components.RenderNote(components.NoteProps{Markdown: m.pickerNote(), Width: innerWidth}))
	s.blank()

	rects := s.row(components.ButtonGap,
		components.SecondaryButtonStyle.Render("CANCEL"),
		components.ButtonStyle.Render("CONFIRM"),
	)
	s.mark(hitCancel, 0, rects[0])
	s.mark(hitConfirm, 0, rects[1])

	s.blank()
	s.add(m.help.View(m.keys.pickerHelp()))
	return s
}

// renderPicker returns the dialog with its regions in screen coordinates.
func (m Model) renderPicker() frame {
	body := m.pickerBody()
	box := components.ModalBoxStyle.Render(body.render())
	w, h := lipgloss.Width(box), lipgloss.Height(box)
	x, y := layers.CenteredOrigin(w, h, m.UiState.Width(), m.UiState.Height())

	// border (1) plus padding (1 vertical, 2 horizontal)
	regions := []hitRegion{{kind: hitModal, rect: layers.Rect{X: x, Y: y, W: w, H: h}}}
	regions = append(regions, offsetRegions(body.regions, x+3, y+2)...)
	return frame{content: box, regions: regions}
}

func (m Model) renderHelp() string {
	h := m.help
	h.ShowAll = true
	content := lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render("Keyboard shortcuts"),
		"",
		h.View(m.keys.pageHelp()),
		"",
		components.TitleStyle.Render("Date picker"),
		"",
		h.View(m.keys.pickerHelp()),
	)
	return components.HelpBoxStyle.Render(content)
}

func (m Model) renderStatusBar() string {
	hint := ""
	if b := m.AppState.LastBooking(); b != nil {
		hint = fmt.Sprintf("last booking %s · press %s for help", humanize.Time(b.CreatedAt), m.Config.KeyMappings.ShowHelp)
	}
	return components.RenderStatusBar(components.StatusBarProps{Width: m.UiState.Width(), Hint: hint})
}
