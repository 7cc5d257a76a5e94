package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

type confirmModalFocus int

const (
	confirmFocusConfirm confirmModalFocus = iota
	confirmFocusCancel
)

func (f confirmModalFocus) toggled() confirmModalFocus {
	if f == confirmFocusConfirm {
		return confirmFocusCancel
	}
	return confirmFocusConfirm
}

func modalWidth(screenW int) int {
	w := screenW - 8
	if w > 64 {
		w = 64
	}
	if w < 24 {
		w = 24
	}
	return w
}

func modalBodyWidth(screenW int) int {
	return modalWidth(screenW) - 4
}

// renderModalBox draws a titled box: header bar on top, body below, both on
// the modal surface. No outer border: some terminals show background
// artifacts when nesting bordered components inside colored modals.
func renderModalBox(screenW int, title, content string) string {
	w := modalWidth(screenW)

	header := lipgloss.NewStyle().
		Width(w).
		Padding(0, 2).
		Bold(true).
		Foreground(colorSurfaceFg).
		Background(colorModalHeaderBg).
		Render(title)

	body := lipgloss.NewStyle().
		Width(w).
		Padding(1, 2).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

func renderConfirmModal(screenW int, title, body, confirmLabel, cancelLabel string, focus confirmModalFocus) string {
	btnBase := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
	btnActive := btnBase.
		Foreground(colorSelectedFg).
		Background(colorSelectedBg).
		Bold(true)

	confirm := btnBase.Render(confirmLabel)
	cancel := btnBase.Render(cancelLabel)
	if focus == confirmFocusConfirm {
		confirm = btnActive.Render(confirmLabel)
	} else {
		cancel = btnActive.Render(cancelLabel)
	}

	controls := lipgloss.JoinHorizontal(lipgloss.Top, confirm, " ", cancel)
	help := styleMuted().Width(modalBodyWidth(screenW)).Render("tab: focus   enter: select   esc: cancel")

	content := strings.Join([]string{body, "", controls, "", help}, "\n")
	return renderModalBox(screenW, title, content)
}

// renderAlertModal shows the one generic failure message. It blocks until
// dismissed, like the original client's alert dialog.
func renderAlertModal(screenW int, body string) string {
	msg := lipgloss.NewStyle().
		Width(modalBodyWidth(screenW)).
		Foreground(colorDangerFg).
		Render(body)
	help := styleMuted().Width(modalBodyWidth(screenW)).Render("enter/esc: dismiss")

	content := strings.Join([]string{msg, "", help}, "\n")
	return renderModalBox(screenW, "Something went wrong", content)
}

func renderInputModal(screenW int, title, inputView string) string {
	bodyW := modalBodyWidth(screenW)
	help := styleMuted().Width(bodyW).Render("enter: save   esc: cancel")

	content := strings.Join([]string{renderInputLine(bodyW, inputView), "", help}, "\n")
	return renderModalBox(screenW, title, content)
}

// renderInputLine keeps a text input on a single visual line. Stray newlines
// or ANSI overflow would otherwise wrap inside the modal and look like
// inserted newlines while typing.
func renderInputLine(bodyW int, inputView string) string {
	if bodyW < 10 {
		bodyW = 10
	}
	inputView = strings.ReplaceAll(inputView, "\n", " ")
	inputView = strings.ReplaceAll(inputView, "\r", " ")

	line := lipgloss.PlaceHorizontal(
		bodyW,
		lipgloss.Left,
		" "+inputView+" ",
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	if xansi.StringWidth(line) > bodyW {
		// Terminate ANSI styling so the cut never bleeds into the modal.
		line = xansi.Cut(line, 0, bodyW) + "\x1b[0m"
	}
	return line
}

// overlayModal centers a modal on an otherwise dimmed-out body area.
func overlayModal(screenW, bodyH int, modal string) string {
	return lipgloss.Place(screenW, bodyH, lipgloss.Center, lipgloss.Center, modal)
}
